package testhelpers

import (
	stderrors "errors"
	"fmt"
	"reflect"

	"github.com/onsi/gomega/types"
	errorspkg "github.com/pkg/errors"
)

// BeErrorType matches when the actual error, or any error in its cause
// chain, has the same concrete type as the expected error.
func BeErrorType(expected error) types.GomegaMatcher {
	return &beErrorTypeMatcher{
		expected: expected,
	}
}

type beErrorTypeMatcher struct {
	expected error
}

func (matcher *beErrorTypeMatcher) Match(actual interface{}) (success bool, err error) {
	if actual == nil {
		return false, nil
	}

	actualErr, ok := actual.(error)
	if !ok {
		return false, fmt.Errorf("BeErrorType matcher expects an error")
	}

	expectedType := reflect.TypeOf(matcher.expected)
	for cause := errorspkg.Cause(actualErr); cause != nil; cause = stderrors.Unwrap(cause) {
		if reflect.TypeOf(cause) == expectedType {
			return true, nil
		}
	}
	for cause := actualErr; cause != nil; cause = stderrors.Unwrap(cause) {
		if reflect.TypeOf(cause) == expectedType {
			return true, nil
		}
	}

	return false, nil
}

func (matcher *beErrorTypeMatcher) FailureMessage(actual interface{}) (message string) {
	if actual == nil {
		return fmt.Sprintf("Expected error, got nil")
	}

	actualErr, _ := actual.(error)
	return fmt.Sprintf("Expected error\n\t%s\nto be of type\n\t%s", actualErr.Error(), reflect.TypeOf(matcher.expected))
}

func (matcher *beErrorTypeMatcher) NegatedFailureMessage(actual interface{}) (message string) {
	actualErr, _ := actual.(error)
	return fmt.Sprintf("Expected error\n\t%s\nnot to be of type\n\t%s", actualErr.Error(), reflect.TypeOf(matcher.expected))
}
