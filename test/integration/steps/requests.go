//go:build integration

package steps

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/cucumber/godog"
)

func (t *testContext) registerRequestSteps(sc *godog.ScenarioContext) {
	sc.Step(`^the API server is running$`, t.theAPIServerIsRunning)
	sc.Step(`^the current date is "([^"]*)"$`, t.theCurrentDateIs)
	sc.Step(`^the header contains the key "([^"]*)" with "([^"]*)"$`, t.theHeaderContainsTheKeyWith)
	sc.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, t.iSendARequestTo)
	sc.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, t.iSendARequestToWithBody)
	sc.Step(`^I am logged in as "([^"]*)"$`, t.iAmLoggedInAs)
	sc.Step(`^I log out$`, t.iLogOut)
}

func (t *testContext) theAPIServerIsRunning() error {
	if t.engine == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	return t.executeRequest(method, path, []byte(t.replacePlaceholders(body.Content)))
}

// iAmLoggedInAs registers the user through the API and keeps its tokens.
func (t *testContext) iAmLoggedInAs(email string) error {
	payload, _ := json.Marshal(map[string]string{
		"email":    email,
		"name":     strings.Split(email, "@")[0],
		"password": "Password123!",
	})
	if err := t.executeRequest(http.MethodPost, "/api/v1/auth/register", payload); err != nil {
		return err
	}
	if t.response.status != http.StatusCreated {
		return fmt.Errorf("registration failed with %d: %s", t.response.status, t.response.body)
	}

	var auth struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
		User         struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	if err := json.Unmarshal(t.response.body, &auth); err != nil {
		return err
	}

	t.accessToken = auth.AccessToken
	t.userID = auth.User.ID
	t.saved["refresh_token"] = auth.RefreshToken
	t.saved["user_id"] = auth.User.ID
	return nil
}

func (t *testContext) iLogOut() error {
	payload, _ := json.Marshal(map[string]string{"refresh_token": t.saved["refresh_token"]})
	if err := t.executeRequest(http.MethodPost, "/api/v1/auth/logout", payload); err != nil {
		return err
	}
	t.accessToken = ""
	return nil
}

func (t *testContext) replacePlaceholders(content string) string {
	for key, value := range t.saved {
		content = strings.ReplaceAll(content, "{{"+key+"}}", value)
	}
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, t.replacePlaceholders(path), body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}
	for key, value := range t.headers {
		req.Header.Set(key, t.replacePlaceholders(value))
	}

	rec := httptest.NewRecorder()
	t.engine.ServeHTTP(rec, req)

	t.response = &response{
		status:  rec.Code,
		headers: rec.Header(),
		body:    rec.Body.Bytes(),
	}
	return nil
}
