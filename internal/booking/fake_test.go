package booking

import (
	"context"
	"fmt"
	"time"
)

// fakeElement is a scriptable Element double.
type fakeElement struct {
	attrs     map[string]string
	text      string
	visible   bool
	disabled  bool
	attrErr   error
	selectErr error
	selected  []string
}

func (e *fakeElement) GetAttribute(name string) (string, error) {
	if e.attrErr != nil {
		return "", e.attrErr
	}
	return e.attrs[name], nil
}

func (e *fakeElement) InnerText() (string, error)  { return e.text, nil }
func (e *fakeElement) IsVisible() (bool, error)    { return e.visible, nil }
func (e *fakeElement) IsDisabled() (bool, error)   { return e.disabled, nil }
func (e *fakeElement) SelectOption(v string) error {
	if e.selectErr != nil {
		return e.selectErr
	}
	e.selected = append(e.selected, v)
	return nil
}

// fakePage is a scriptable Page/Session double. Results are keyed by
// selector; every call is appended to calls for order assertions. A fresh
// fakePage authenticates successfully and has nothing else on it.
type fakePage struct {
	calls []string

	queryResults map[string]Element
	queryErr     map[string]error
	listResults  map[string][]Element
	listErr      map[string]error
	fillErr      map[string]error
	clickErr     map[string]error
	confirmErr   map[string]error
	selectErr    map[string]error
	waitErr      map[string]error
	navErr       error
	evalErr      error

	// onFacilitySelect lets a test re-script the page when the sweep picks
	// a facility, mimicking the form re-render.
	onFacilitySelect func(p *fakePage, value string)

	closed int
}

func newFakePage() *fakePage {
	return &fakePage{
		queryResults: map[string]Element{},
		queryErr:     map[string]error{},
		listResults:  map[string][]Element{},
		listErr:      map[string]error{},
		fillErr:      map[string]error{},
		clickErr:     map[string]error{},
		confirmErr:   map[string]error{},
		selectErr:    map[string]error{},
		waitErr:      map[string]error{},
	}
}

func (p *fakePage) record(op, arg string) { p.calls = append(p.calls, op+" "+arg) }

func (p *fakePage) Navigate(url string) error {
	p.record("goto", url)
	return p.navErr
}

func (p *fakePage) NavigateAndWaitLoad(url string) error {
	p.record("goto-load", url)
	return p.navErr
}

func (p *fakePage) Fill(selector, value string) error {
	p.record("fill", selector)
	return p.fillErr[selector]
}

func (p *fakePage) Click(selector string) error {
	p.record("click", selector)
	return p.clickErr[selector]
}

func (p *fakePage) ClickConfirming(selector string, policy ConfirmPolicy) error {
	p.record("click-confirm", selector)
	return p.confirmErr[selector]
}

func (p *fakePage) Evaluate(script string) error {
	p.record("eval", script)
	return p.evalErr
}

func (p *fakePage) Query(selector string) (Element, error) {
	p.record("query", selector)
	if err := p.queryErr[selector]; err != nil {
		return nil, err
	}
	if el := p.queryResults[selector]; el != nil {
		return el, nil
	}
	return nil, nil
}

func (p *fakePage) QueryAll(selector string) ([]Element, error) {
	p.record("query-all", selector)
	if err := p.listErr[selector]; err != nil {
		return nil, err
	}
	return p.listResults[selector], nil
}

func (p *fakePage) SelectOption(selector, value string) error {
	p.record("select", selector+"="+value)
	if err := p.selectErr[selector]; err != nil {
		return err
	}
	if selector == facilitySelectSelector && p.onFacilitySelect != nil {
		p.onFacilitySelect(p, value)
	}
	return nil
}

func (p *fakePage) WaitForSelector(selector string, timeout time.Duration) error {
	p.record("wait", selector)
	return p.waitErr[selector]
}

func (p *fakePage) Close() { p.closed++ }

// called reports whether any recorded call starts with prefix.
func (p *fakePage) called(prefix string) bool {
	for _, c := range p.calls {
		if len(c) >= len(prefix) && c[:len(prefix)] == prefix {
			return true
		}
	}
	return false
}

// scripting helpers

func withContinueLink(p *fakePage, href string) {
	p.queryResults[continueLinkSelector] = &fakeElement{attrs: map[string]string{"href": href}}
}

func withLocations(p *fakePage, locs ...Location) {
	els := make([]Element, 0, len(locs))
	for _, l := range locs {
		els = append(els, &fakeElement{attrs: map[string]string{"value": l.Value}, text: l.Label})
	}
	p.listResults[facilityOptionSelector] = els
}

func withSubmit(p *fakePage, disabled bool) {
	p.queryResults[submitButtonSelector] = &fakeElement{disabled: disabled}
}

func withoutSubmit(p *fakePage) {
	delete(p.queryResults, submitButtonSelector)
	p.waitErr[submitButtonSelector] = fmt.Errorf("no submit control: %w", ErrTimeout)
}

func withSlot(p *fakePage, date string, times ...string) {
	p.queryResults[dateFieldSelector] = &fakeElement{attrs: map[string]string{"value": date}}
	p.queryResults[timeSelectSelector] = &fakeElement{}
	opts := make([]Element, 0, len(times))
	for _, t := range times {
		opts = append(opts, &fakeElement{attrs: map[string]string{"value": t}})
	}
	p.listResults[timeOptionSelector] = opts
}

func withoutSlot(p *fakePage) {
	p.queryResults[dateFieldSelector] = &fakeElement{attrs: map[string]string{"value": ""}}
	delete(p.queryResults, timeSelectSelector)
	delete(p.listResults, timeOptionSelector)
}

// fakeFactory hands out pre-scripted pages, one per cycle, and records
// release-invariant violations.
type fakeFactory struct {
	pages      []*fakePage
	idx        int
	active     *fakePage
	violations []string
}

func (f *fakeFactory) NewSession(ctx context.Context) (Session, error) {
	if f.active != nil && f.active.closed == 0 {
		f.violations = append(f.violations, "previous session not released before new cycle")
	}
	if f.idx >= len(f.pages) {
		return nil, fmt.Errorf("no session scripted for cycle %d", f.idx+1)
	}
	p := f.pages[f.idx]
	f.idx++
	f.active = p
	return p, nil
}
