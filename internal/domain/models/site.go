// internal/domain/models/site.go
package models

// Site identity constants. These appear in page chrome, email footers,
// and the default content documents.
const (
	DefaultSiteName = "Bimaah International Ltd"

	// SiteStrapline appears under the site name in the footer and in
	// outbound email.
	SiteStrapline = "Your Rights. Your Voice. Our Support."

	// IAARegistrationNumber is the firm's Immigration Advice Authority
	// registration, shown wherever regulatory status is stated.
	IAARegistrationNumber = "N202537994"
)
