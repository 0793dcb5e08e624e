package travel

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/pranaynookala001/PurdueGo2025/internal/pkg/timecodec"
)

// Notifier delivers leave-by reminders. The backend implementation emits
// them as log events on a weekly cron schedule; a push gateway could slot
// in behind the same interface.
type Notifier interface {
	Schedule(plan Plan) error
	Preview()
}

// CronNotifier registers one weekly cron entry per plan, firing at the
// plan's leave-by minute on its weekday.
type CronNotifier struct {
	runner  *cron.Cron
	entries map[string]cron.EntryID
}

// NewCronNotifier creates a notifier with its own cron runner. Start must
// be called before entries fire.
func NewCronNotifier() *CronNotifier {
	return &CronNotifier{
		runner:  cron.New(),
		entries: make(map[string]cron.EntryID),
	}
}

// Start begins running scheduled entries.
func (n *CronNotifier) Start() {
	n.runner.Start()
}

// Stop halts the runner. Running jobs finish; no new ones fire.
func (n *CronNotifier) Stop() {
	n.runner.Stop()
}

// cronSpec renders a weekly five-field spec ("48 8 * * 1") from a plan's
// leave-by time and weekday.
func cronSpec(plan Plan) (string, error) {
	frac, err := timecodec.Parse(plan.LeaveBy)
	if err != nil {
		return "", err
	}
	hour := int(frac)
	minute := int((frac-float64(hour))*60 + 0.5)
	return fmt.Sprintf("%d %d * * %d", minute, hour, int(plan.Day.TimeWeekday())), nil
}

// Schedule registers the plan's weekly reminder. Re-scheduling a plan ID
// replaces its previous entry, so a plan never fires twice.
func (n *CronNotifier) Schedule(plan Plan) error {
	spec, err := cronSpec(plan)
	if err != nil {
		return err
	}

	if old, ok := n.entries[plan.ID]; ok {
		n.runner.Remove(old)
	}

	id, err := n.runner.AddFunc(spec, func() {
		log.Info().
			Str("planId", plan.ID).
			Str("course", plan.CourseCode).
			Str("day", string(plan.Day)).
			Str("classStart", plan.ClassStart).
			Int("leadMinutes", plan.LeadMinutes).
			Msgf("Leave now for %s, class starts at %s", plan.CourseCode, plan.ClassStart)
	})
	if err != nil {
		return err
	}
	n.entries[plan.ID] = id
	return nil
}

// Preview fires a sample reminder immediately so the user sees what a real
// one looks like. Fixed content, independent of any class.
func (n *CronNotifier) Preview() {
	log.Info().
		Str("course", "CS180").
		Str("classStart", "9:00 AM").
		Msg("Leave now for CS180, class starts at 9:00 AM")
}

// EntryCount reports how many reminders are currently registered.
func (n *CronNotifier) EntryCount() int {
	return len(n.entries)
}
