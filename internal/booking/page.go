package booking

import (
	"context"
	"time"
)

// ConfirmPolicy decides what happens to a native confirmation dialog raised
// by a claim click. The driver applies it inside the click call itself, so
// the core never races handler registration against dialog emission.
type ConfirmPolicy int

const (
	ConfirmAccept ConfirmPolicy = iota
	ConfirmDismiss
)

// Element is one DOM handle returned by Query or QueryAll.
type Element interface {
	GetAttribute(name string) (string, error)
	InnerText() (string, error)
	IsVisible() (bool, error)
	IsDisabled() (bool, error)
	SelectOption(value string) error
}

// Page is the driver capability the booking core runs on. The playwright
// implementation lives in internal/browser; tests substitute fakes.
//
// Query and QueryAll return nil without error when nothing matches. Bounded
// waits fail with ErrTimeout on expiry; any other driver failure surfaces
// as ErrInteraction.
type Page interface {
	// Navigate loads url, bounded by the driver's page timeout.
	Navigate(url string) error
	// NavigateAndWaitLoad loads url and blocks until the page's load event,
	// with no timeout of its own.
	NavigateAndWaitLoad(url string) error
	Fill(selector, value string) error
	Click(selector string) error
	// ClickConfirming clicks selector and applies policy to any
	// confirmation dialog the click raises.
	ClickConfirming(selector string, policy ConfirmPolicy) error
	Evaluate(script string) error
	Query(selector string) (Element, error)
	QueryAll(selector string) ([]Element, error)
	SelectOption(selector, value string) error
	WaitForSelector(selector string, timeout time.Duration) error
}

// Session is one isolated browsing context, exclusively owned by a single
// cycle. Close is idempotent; the orchestrator calls it on every exit path.
type Session interface {
	Page
	Close()
}

type SessionFactory interface {
	NewSession(ctx context.Context) (Session, error)
}
