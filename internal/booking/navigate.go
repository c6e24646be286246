package booking

import (
	"fmt"
	"log/slog"
	"regexp"
)

var scheduleIDPattern = regexp.MustCompile(`/schedule/(\d+)/continue_actions`)

// Navigator moves an authenticated session to the appointment scheduling
// page. The schedule id is not exposed anywhere directly; it has to be
// parsed out of the continue-actions link on the landing page.
type Navigator struct {
	BaseURL string
	Log     *slog.Logger
}

func (n Navigator) ToAppointment(p Page) error {
	link, err := p.Query(continueLinkSelector)
	if err != nil {
		return fmt.Errorf("%w: locating continue link: %v", ErrNavigation, err)
	}
	if link == nil {
		return fmt.Errorf("%w: continue link not found", ErrNavigation)
	}
	href, err := link.GetAttribute("href")
	if err != nil {
		return fmt.Errorf("%w: reading continue link href: %v", ErrNavigation, err)
	}
	m := scheduleIDPattern.FindStringSubmatch(href)
	if m == nil {
		return fmt.Errorf("%w: no schedule id in href %q", ErrNavigation, href)
	}

	url := n.BaseURL + fmt.Sprintf(appointmentPathFormat, m[1])
	// Unbounded wait: the appointment form loads a calendar widget that can
	// outlast the page timeout, so we rely on the load event alone here.
	if err := p.NavigateAndWaitLoad(url); err != nil {
		return fmt.Errorf("%w: opening %s: %v", ErrNavigation, url, err)
	}
	logOrDefault(n.Log).Info("on appointment scheduling page", "schedule_id", m[1])
	return nil
}
