package reminder

import (
	"context"

	"github.com/robfig/cron/v3"

	"unibot/internal/class/repository"
	"unibot/internal/model"
	"unibot/pkg/datemath"
	"unibot/pkg/log"
)

// DefaultCronSpec fires the daily digest at 06:00 local time.
const DefaultCronSpec = "0 6 * * *"

// Sender pushes messages to WhatsApp groups.
type Sender interface {
	SendMessage(chatJID, text string, mentions []string) error
}

// Repository is the slice of the class data store the dispatcher reads.
type Repository interface {
	ListClasses(ctx context.Context, opt repository.ListClassesOptions) ([]model.Class, int, error)
	ListSchedules(ctx context.Context, opt repository.ListSchedulesOptions) ([]model.Schedule, error)
	ListAssignments(ctx context.Context, opt repository.ListAssignmentsOptions) ([]model.Assignment, error)
}

// Dispatcher sends a daily digest of today's schedules and deadlines to
// every class that is linked to a WhatsApp group.
type Dispatcher struct {
	l      log.Logger
	repo   Repository
	sender Sender
	dates  *datemath.Parser
	cron   *cron.Cron
	spec   string
}

// New creates a reminder dispatcher. An empty cronSpec falls back to
// DefaultCronSpec.
func New(l log.Logger, repo Repository, sender Sender, dates *datemath.Parser, cronSpec string) *Dispatcher {
	if cronSpec == "" {
		cronSpec = DefaultCronSpec
	}
	return &Dispatcher{
		l:      l,
		repo:   repo,
		sender: sender,
		dates:  dates,
		spec:   cronSpec,
	}
}

// Start registers the cron entry and begins the schedule.
func (d *Dispatcher) Start() error {
	c := cron.New(cron.WithLocation(d.dates.Now().Location()))
	if _, err := c.AddFunc(d.spec, d.tick); err != nil {
		return err
	}
	d.cron = c
	c.Start()
	return nil
}

// Stop halts the schedule. Running jobs finish first.
func (d *Dispatcher) Stop() {
	if d.cron != nil {
		<-d.cron.Stop().Done()
	}
}
