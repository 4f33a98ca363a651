package handlers

import "github.com/nailaham15/nailah-s-portfolio/internal/contact"

// ContactData is the contact form state.
type ContactData struct {
	Lang      string
	Form      contact.Form
	Result    contact.Result
	Submitted bool
	CSRFToken string
	CSRFField string
}
