package browser

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/example/usvsched/internal/booking"
)

type session struct {
	browser playwright.Browser
	context playwright.BrowserContext
	page    playwright.Page
	timeout time.Duration
	close   sync.Once
}

// Close releases page, context and browser. Safe to call more than once;
// individual close errors are ignored so cleanup always runs to the end.
func (s *session) Close() {
	s.close.Do(func() {
		_ = s.page.Close()
		_ = s.context.Close()
		_ = s.browser.Close()
	})
}

func (s *session) Navigate(url string) error {
	_, err := s.page.Goto(url, playwright.PageGotoOptions{
		Timeout: playwright.Float(float64(s.timeout.Milliseconds())),
	})
	return wrap(err)
}

// NavigateAndWaitLoad blocks on the page's load event with no timeout.
func (s *session) NavigateAndWaitLoad(url string) error {
	_, err := s.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateLoad,
		Timeout:   playwright.Float(0),
	})
	return wrap(err)
}

func (s *session) Fill(selector, value string) error {
	return wrap(s.page.Fill(selector, value))
}

func (s *session) Click(selector string) error {
	return wrap(s.page.Click(selector))
}

// ClickConfirming arms a one-shot dialog handler before clicking, so the
// policy is in place no matter how quickly the dialog fires.
func (s *session) ClickConfirming(selector string, policy booking.ConfirmPolicy) error {
	var handled bool
	s.page.OnDialog(func(dialog playwright.Dialog) {
		if handled {
			return
		}
		handled = true
		if policy == booking.ConfirmAccept {
			_ = dialog.Accept()
		} else {
			_ = dialog.Dismiss()
		}
	})
	return wrap(s.page.Click(selector))
}

func (s *session) Evaluate(script string) error {
	_, err := s.page.Evaluate(script)
	return wrap(err)
}

func (s *session) Query(selector string) (booking.Element, error) {
	el, err := s.page.QuerySelector(selector)
	if err != nil {
		return nil, wrap(err)
	}
	if el == nil {
		return nil, nil
	}
	return element{el: el}, nil
}

func (s *session) QueryAll(selector string) ([]booking.Element, error) {
	els, err := s.page.QuerySelectorAll(selector)
	if err != nil {
		return nil, wrap(err)
	}
	out := make([]booking.Element, 0, len(els))
	for _, el := range els {
		out = append(out, element{el: el})
	}
	return out, nil
}

func (s *session) SelectOption(selector, value string) error {
	_, err := s.page.SelectOption(selector, playwright.SelectOptionValues{
		Values: &[]string{value},
	})
	return wrap(err)
}

func (s *session) WaitForSelector(selector string, timeout time.Duration) error {
	_, err := s.page.WaitForSelector(selector, playwright.PageWaitForSelectorOptions{
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	})
	return wrap(err)
}

// wrap translates driver failures into the booking error taxonomy.
func wrap(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, playwright.ErrTimeout) {
		return fmt.Errorf("%w: %v", booking.ErrTimeout, err)
	}
	return fmt.Errorf("%w: %v", booking.ErrInteraction, err)
}

type element struct {
	el playwright.ElementHandle
}

func (e element) GetAttribute(name string) (string, error) {
	v, err := e.el.GetAttribute(name)
	return v, wrap(err)
}

func (e element) InnerText() (string, error) {
	v, err := e.el.InnerText()
	return v, wrap(err)
}

func (e element) IsVisible() (bool, error) {
	v, err := e.el.IsVisible()
	return v, wrap(err)
}

func (e element) IsDisabled() (bool, error) {
	v, err := e.el.IsDisabled()
	return v, wrap(err)
}

func (e element) SelectOption(value string) error {
	_, err := e.el.SelectOption(playwright.SelectOptionValues{
		Values: &[]string{value},
	})
	return wrap(err)
}
