// Package pages holds page objects for the HOTEL PLANISPHERE practice site.
package pages

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

// Selectors used by HotelPage. The fixture site renders the same structure.
const (
	SelectorLoginLink   = `#login-holder > a`
	SelectorEmail       = `#email`
	SelectorPassword    = `#password`
	SelectorLoginButton = `#login-button`
	SelectorPlanCard    = `.card`

	XPathReservationLink = `//*[@id="navbarNav"]/ul/li[2]/a`
)

// HotelPage drives the hotel site through one browser page.
type HotelPage struct {
	page    *rod.Page
	baseURL string
	timeout time.Duration
}

// NewHotelPage wraps page. baseURL is the site root without the /ja/ suffix.
func NewHotelPage(page *rod.Page, baseURL string, timeout time.Duration) *HotelPage {
	return &HotelPage{
		page:    page,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		timeout: timeout,
	}
}

// HomeURL returns the Japanese home page URL.
func (h *HotelPage) HomeURL() string {
	return h.baseURL + "/ja/"
}

// OpenHomePage navigates to the home page.
func (h *HotelPage) OpenHomePage() error {
	p := h.page.Timeout(h.timeout)
	if err := p.Navigate(h.HomeURL()); err != nil {
		return fmt.Errorf("open home page: %w", err)
	}
	if err := p.WaitLoad(); err != nil {
		return fmt.Errorf("open home page: %w", err)
	}
	return nil
}

// Title returns the document title.
func (h *HotelPage) Title() (string, error) {
	info, err := h.page.Info()
	if err != nil {
		return "", fmt.Errorf("page info: %w", err)
	}
	return info.Title, nil
}

// URL returns the current location.
func (h *HotelPage) URL() (string, error) {
	info, err := h.page.Info()
	if err != nil {
		return "", fmt.Errorf("page info: %w", err)
	}
	return info.URL, nil
}

// ClickLoginButton follows the login link in the header.
func (h *HotelPage) ClickLoginButton() error {
	return h.clickAndWait(SelectorLoginLink, false)
}

// EnterLoginCredentials fills the login form.
func (h *HotelPage) EnterLoginCredentials(email, password string) error {
	if err := h.input(SelectorEmail, email); err != nil {
		return err
	}
	return h.input(SelectorPassword, password)
}

// LoginButtonText returns the label of the submit button.
func (h *HotelPage) LoginButtonText() (string, error) {
	return h.text(SelectorLoginButton)
}

// SubmitLogin submits the login form and waits for the next page.
func (h *HotelPage) SubmitLogin() error {
	return h.clickAndWait(SelectorLoginButton, false)
}

// OpenReservations clicks the second navbar entry, the plan list.
func (h *HotelPage) OpenReservations() error {
	return h.clickAndWait(XPathReservationLink, true)
}

// PlanCard is the first card on the plan list page.
type PlanCard struct {
	Header string
	Title  string
	Items  []string
	Button string
	Footer string
}

// ReadPlanCard reads the featured plan card.
func (h *HotelPage) ReadPlanCard() (PlanCard, error) {
	card, err := h.page.Timeout(h.timeout).Element(SelectorPlanCard)
	if err != nil {
		return PlanCard{}, fmt.Errorf("find %s: %w", SelectorPlanCard, err)
	}

	var pc PlanCard
	fields := []struct {
		selector string
		dst      *string
	}{
		{".card-header", &pc.Header},
		{".card-body > h5", &pc.Title},
		{".card-body > a", &pc.Button},
		{".card-footer", &pc.Footer},
	}
	for _, f := range fields {
		el, err := card.Element(f.selector)
		if err != nil {
			return PlanCard{}, fmt.Errorf("find %s: %w", f.selector, err)
		}
		if *f.dst, err = el.Text(); err != nil {
			return PlanCard{}, fmt.Errorf("text of %s: %w", f.selector, err)
		}
		*f.dst = strings.TrimSpace(*f.dst)
	}

	items, err := card.Elements(".card-body li")
	if err != nil {
		return PlanCard{}, fmt.Errorf("find plan items: %w", err)
	}
	for _, el := range items {
		text, err := el.Text()
		if err != nil {
			return PlanCard{}, fmt.Errorf("text of plan item: %w", err)
		}
		pc.Items = append(pc.Items, strings.TrimSpace(text))
	}
	return pc, nil
}

func (h *HotelPage) element(selector string, xpath bool) (*rod.Element, error) {
	p := h.page.Timeout(h.timeout)
	var (
		el  *rod.Element
		err error
	)
	if xpath {
		el, err = p.ElementX(selector)
	} else {
		el, err = p.Element(selector)
	}
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", selector, err)
	}
	return el, nil
}

func (h *HotelPage) input(selector, value string) error {
	el, err := h.element(selector, false)
	if err != nil {
		return err
	}
	if err := el.Input(value); err != nil {
		return fmt.Errorf("input %s: %w", selector, err)
	}
	return nil
}

func (h *HotelPage) text(selector string) (string, error) {
	el, err := h.element(selector, false)
	if err != nil {
		return "", err
	}
	text, err := el.Text()
	if err != nil {
		return "", fmt.Errorf("text of %s: %w", selector, err)
	}
	return strings.TrimSpace(text), nil
}

// clickAndWait clicks the element and waits for the navigation it triggers.
func (h *HotelPage) clickAndWait(selector string, xpath bool) error {
	el, err := h.element(selector, xpath)
	if err != nil {
		return err
	}
	wait := h.page.Timeout(h.timeout).WaitNavigation(proto.PageLifecycleEventNameLoad)
	if err := el.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return fmt.Errorf("click %s: %w", selector, err)
	}
	wait()
	return nil
}
