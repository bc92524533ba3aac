package image_test

import (
	"encoding/json"
	"time"

	"code.cloudfoundry.org/imagemeta/image"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Healthcheck", func() {
	It("encodes durations as integer nanoseconds", func() {
		interval := 30 * time.Second
		payload, err := json.Marshal(image.Healthcheck{Interval: &interval})
		Expect(err).NotTo(HaveOccurred())
		Expect(payload).To(MatchJSON(`{"Interval": 30000000000}`))
	})

	It("decodes integer nanoseconds into durations", func() {
		var check image.Healthcheck
		Expect(json.Unmarshal([]byte(`{"Interval": 30000000000}`), &check)).To(Succeed())
		Expect(*check.Interval).To(Equal(30 * time.Second))
	})

	It("treats a missing duration key as absent, not zero", func() {
		var check image.Healthcheck
		Expect(json.Unmarshal([]byte(`{"Test": ["CMD", "true"]}`), &check)).To(Succeed())
		Expect(check.Interval).To(BeNil())
		Expect(check.Timeout).To(BeNil())
		Expect(check.StartPeriod).To(BeNil())
		Expect(check.StartInterval).To(BeNil())
	})

	It("round-trips every field", func() {
		test := []string{"CMD-SHELL", "x"}
		interval := 30 * time.Second
		timeout := 10 * time.Second
		startPeriod := 5 * time.Second
		startInterval := 3 * time.Second
		retries := uint32(3)

		check := image.Healthcheck{
			Test:          &test,
			Interval:      &interval,
			Timeout:       &timeout,
			StartPeriod:   &startPeriod,
			StartInterval: &startInterval,
			Retries:       &retries,
		}

		payload, err := json.Marshal(check)
		Expect(err).NotTo(HaveOccurred())

		var redecoded image.Healthcheck
		Expect(json.Unmarshal(payload, &redecoded)).To(Succeed())
		Expect(redecoded).To(Equal(check))
	})
})

var _ = Describe("ConfigExtension", func() {
	It("keeps a present-but-empty list distinct from an absent one", func() {
		onBuild := []string{}
		payload, err := json.Marshal(image.ConfigExtension{OnBuild: &onBuild})
		Expect(err).NotTo(HaveOccurred())
		Expect(payload).To(MatchJSON(`{"OnBuild": []}`))

		var redecoded image.ConfigExtension
		Expect(json.Unmarshal(payload, &redecoded)).To(Succeed())
		Expect(redecoded.OnBuild).NotTo(BeNil())
		Expect(*redecoded.OnBuild).To(BeEmpty())
		Expect(redecoded.Shell).To(BeNil())
	})

	It("serializes absent fields to nothing", func() {
		payload, err := json.Marshal(image.ConfigExtension{})
		Expect(err).NotTo(HaveOccurred())
		Expect(payload).To(MatchJSON(`{}`))
	})

	It("accepts the HealthCheck spelling of the healthcheck key", func() {
		var ext image.ConfigExtension
		Expect(json.Unmarshal([]byte(`{"HealthCheck": {"Retries": 2}}`), &ext)).To(Succeed())
		Expect(ext.Healthcheck).NotTo(BeNil())
		Expect(*ext.Healthcheck.Retries).To(Equal(uint32(2)))
	})

	It("round-trips an empty but present healthcheck object", func() {
		var ext image.Extension
		Expect(json.Unmarshal([]byte(`{"config": {"Healthcheck": {}}}`), &ext)).To(Succeed())
		Expect(ext.Config.Healthcheck).NotTo(BeNil())

		payload, err := json.Marshal(ext)
		Expect(err).NotTo(HaveOccurred())
		Expect(payload).To(MatchJSON(`{"config": {"Healthcheck": {}}}`))
	})
})
