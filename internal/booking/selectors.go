package booking

// Everything site-specific lives here. Paths are appended to the configured
// base URL (e.g. https://ais.usvisa-info.com/en-ca/niv), which carries the
// locale and visa-class segments.
const (
	signInPath = "/users/sign_in"
	// appointmentPathFormat takes the schedule id parsed from the
	// continue-actions link.
	appointmentPathFormat = "/schedule/%s/appointment"
)

const (
	emailFieldSelector    = "input[name='user[email]']"
	passwordFieldSelector = "input[name='user[password]']"
	signInSubmitSelector  = "input[type='submit'][name='commit']"
	// The policy checkbox sits under a styled overlay that swallows
	// pointer events, so it is toggled from script instead of clicked.
	consentToggleScript = `document.querySelector('input[name="policy_confirmed"]').click()`
	// signedInCardSelector appears only once the authenticated landing
	// page has rendered.
	signedInCardSelector = "div.application.attend_appointment.card.success"

	continueLinkSelector = "a.button.primary.small[href*='continue_actions']"

	facilitySelectSelector = "#appointments_consulate_appointment_facility_id"
	facilityOptionSelector = "#appointments_consulate_appointment_facility_id option[value]"
	// busyIndicatorSelector is shown when the consulate has no date or
	// time to offer at all.
	busyIndicatorSelector = "#consulate_date_time_not_available"
	dateFieldSelector     = "#appointments_consulate_appointment_date"
	timeSelectSelector    = "#appointments_consulate_appointment_time"
	timeOptionSelector    = "#appointments_consulate_appointment_time option[value]"
	submitButtonSelector  = "#appointments_submit"
)
