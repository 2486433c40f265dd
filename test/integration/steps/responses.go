//go:build integration

package steps

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/cucumber/godog"
)

func (t *testContext) registerResponseSteps(sc *godog.ScenarioContext) {
	sc.Step(`^the response status should be (\d+)$`, t.theResponseStatusShouldBe)
	sc.Step(`^the response should be JSON$`, t.theResponseShouldBeJSON)
	sc.Step(`^the response should contain "([^"]*)"$`, t.theResponseShouldContain)
	sc.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, t.theResponseFieldShouldBe)
	sc.Step(`^the response field "([^"]*)" should exist$`, t.theResponseFieldShouldExist)
	sc.Step(`^the response field "([^"]*)" should have (\d+) items?$`, t.theResponseFieldShouldHaveItems)
	sc.Step(`^the response header "([^"]*)" should contain "([^"]*)"$`, t.theResponseHeaderShouldContain)
	sc.Step(`^I save the response field "([^"]*)" as "([^"]*)"$`, t.iSaveTheResponseFieldAs)
}

func (t *testContext) theResponseStatusShouldBe(expected int) error {
	if t.response == nil {
		return fmt.Errorf("no response received")
	}
	if t.response.status != expected {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expected, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	var js json.RawMessage
	if err := json.Unmarshal(t.response.body, &js); err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(expected string) error {
	if !strings.Contains(string(t.response.body), expected) {
		return fmt.Errorf("response does not contain %q. Body: %s", expected, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expected string) error {
	value, err := t.field(field)
	if err != nil {
		return err
	}
	if actual := fmt.Sprintf("%v", value); actual != expected {
		return fmt.Errorf("field %q expected %q, got %q", field, expected, actual)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	_, err := t.field(field)
	return err
}

func (t *testContext) theResponseFieldShouldHaveItems(field string, n int) error {
	value, err := t.field(field)
	if err != nil {
		return err
	}
	items, ok := value.([]any)
	if !ok {
		return fmt.Errorf("field %q is not a list", field)
	}
	if len(items) != n {
		return fmt.Errorf("field %q expected %d items, got %d", field, n, len(items))
	}
	return nil
}

func (t *testContext) theResponseHeaderShouldContain(header, expected string) error {
	actual := t.response.headers.Get(header)
	if !strings.Contains(actual, expected) {
		return fmt.Errorf("header %q is %q, expected it to contain %q", header, actual, expected)
	}
	return nil
}

func (t *testContext) iSaveTheResponseFieldAs(field, name string) error {
	value, err := t.field(field)
	if err != nil {
		return err
	}
	t.saved[name] = fmt.Sprintf("%v", value)
	return nil
}

// field resolves a dot separated path such as "goals.0.name" in the response body.
func (t *testContext) field(path string) (any, error) {
	if t.response == nil {
		return nil, fmt.Errorf("no response received")
	}

	var current any
	if err := json.Unmarshal(t.response.body, &current); err != nil {
		return nil, fmt.Errorf("failed to parse response JSON: %w", err)
	}

	for _, part := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[part]
			if !ok {
				return nil, fmt.Errorf("field %q not found in response: %s", path, t.response.body)
			}
			current = value
		case []any:
			idx, err := strconv.Atoi(part)
			if err != nil || idx < 0 || idx >= len(node) {
				return nil, fmt.Errorf("index %q out of range in %q", part, path)
			}
			current = node[idx]
		default:
			return nil, fmt.Errorf("field %q not found in response", path)
		}
	}
	return current, nil
}
