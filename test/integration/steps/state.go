//go:build integration

package steps

import (
	"context"
	"fmt"
	"strings"

	"github.com/cucumber/godog"

	"github.com/cashease/backend/test/integration/mock"
)

func (t *testContext) registerStateSteps(sc *godog.ScenarioContext) {
	sc.Step(`^the db should contain (\d+) objects? in the "([^"]*)" table$`, t.theDbShouldContainObjectsInTheTable)
	sc.Step(`^the email worker runs$`, t.theEmailWorkerRuns)
	sc.Step(`^(\d+) emails? should have been sent$`, t.emailsShouldHaveBeenSent)
	sc.Step(`^an email with subject containing "([^"]*)" should have been sent to "([^"]*)"$`, t.anEmailWithSubjectShouldHaveBeenSentTo)
	sc.Step(`^the stored streak count should be (\d+)$`, t.theStoredStreakCountShouldBe)
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	n, err := t.db.Count(table)
	if err != nil {
		return err
	}
	if int(n) != quantity {
		return fmt.Errorf("expected %d rows in %s, got %d", quantity, table, n)
	}
	return nil
}

func (t *testContext) theEmailWorkerRuns() error {
	if t.injector.EmailWorker == nil {
		return fmt.Errorf("email worker is not configured")
	}
	t.injector.EmailWorker.ProcessNow(context.Background())
	return nil
}

func (t *testContext) emailsShouldHaveBeenSent(n int) error {
	if sent := len(t.sender.Sent()); sent != n {
		return fmt.Errorf("expected %d emails, got %d", n, sent)
	}
	return nil
}

func (t *testContext) anEmailWithSubjectShouldHaveBeenSentTo(subject, to string) error {
	for _, e := range t.sender.Sent() {
		if e.To == to && strings.Contains(e.Subject, subject) {
			return nil
		}
	}
	return fmt.Errorf("no email to %s with subject containing %q among %d sent", to, subject, len(t.sender.Sent()))
}

// theStoredStreakCountShouldBe reads the streak hash straight from redis.
func (t *testContext) theStoredStreakCountShouldBe(count int) error {
	value, err := mock.NewRedis().HGet(context.Background(), "streak:"+t.userID, "count").Result()
	if err != nil {
		return fmt.Errorf("failed to read streak for %s: %w", t.userID, err)
	}
	if value != fmt.Sprint(count) {
		return fmt.Errorf("expected streak %d, got %s", count, value)
	}
	return nil
}
