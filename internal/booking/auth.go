package booking

import (
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// Authenticator submits credentials on the sign-in form and waits for the
// authenticated landing card to appear.
type Authenticator struct {
	BaseURL string
	Timeout time.Duration
	Log     *slog.Logger
}

// SignIn leaves the session authenticated or fails. The success-marker wait
// expiring is ErrTimeout; every other failure is ErrAuthentication. Both are
// transient from the orchestrator's point of view.
func (a Authenticator) SignIn(p Page, username, password string) error {
	if err := p.Navigate(a.BaseURL + signInPath); err != nil {
		return fmt.Errorf("%w: opening sign-in page: %v", ErrAuthentication, err)
	}
	logOrDefault(a.Log).Info("opened sign-in page")

	if err := p.Fill(emailFieldSelector, username); err != nil {
		return fmt.Errorf("%w: filling email: %v", ErrAuthentication, err)
	}
	if err := p.Fill(passwordFieldSelector, password); err != nil {
		return fmt.Errorf("%w: filling password: %v", ErrAuthentication, err)
	}
	// The form rejects submissions without the policy consent toggle.
	if err := p.Evaluate(consentToggleScript); err != nil {
		return fmt.Errorf("%w: confirming policy checkbox: %v", ErrAuthentication, err)
	}
	if err := p.Click(signInSubmitSelector); err != nil {
		return fmt.Errorf("%w: submitting credentials: %v", ErrAuthentication, err)
	}

	if err := p.WaitForSelector(signedInCardSelector, a.Timeout); err != nil {
		if errors.Is(err, ErrTimeout) {
			return fmt.Errorf("waiting for sign-in confirmation: %w", err)
		}
		return fmt.Errorf("%w: waiting for sign-in confirmation: %v", ErrAuthentication, err)
	}
	logOrDefault(a.Log).Info("signed in")
	return nil
}
