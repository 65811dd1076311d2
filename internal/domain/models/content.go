// internal/domain/models/content.go
package models

import "time"

// Singleton content documents live in the "content" collection, keyed
// by a fixed string _id. Each type below has a Default* counterpart
// that the resolver falls back to field by field.
const (
	ContentDocHero    = "hero"
	ContentDocHome    = "home"
	ContentDocContact = "contact"
	ContentDocAbout   = "about"
	ContentDocPrivacy = "privacy"
)

// AllContentDocIDs returns every valid singleton document id.
func AllContentDocIDs() []string {
	return []string{
		ContentDocHero,
		ContentDocHome,
		ContentDocContact,
		ContentDocAbout,
		ContentDocPrivacy,
	}
}

// IsValidContentDocID checks if an id names a singleton content document.
func IsValidContentDocID(id string) bool {
	for _, d := range AllContentDocIDs() {
		if d == id {
			return true
		}
	}
	return false
}

// HeroContent is the landing banner copy.
type HeroContent struct {
	ID           string    `bson:"_id" json:"id"`
	Heading      string    `bson:"heading" json:"heading"`
	Subtext      string    `bson:"subtext" json:"subtext"`
	CTAPrimary   string    `bson:"ctaPrimary" json:"ctaPrimary"`
	CTASecondary string    `bson:"ctaSecondary" json:"ctaSecondary"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// HomeContent is the remaining home page copy beyond the hero banner.
type HomeContent struct {
	ID                  string    `bson:"_id" json:"id"`
	Heading             string    `bson:"heading" json:"heading"`
	Subtext             string    `bson:"subtext" json:"subtext"`
	CTAPrimary          string    `bson:"ctaPrimary" json:"ctaPrimary"`
	CTASecondary        string    `bson:"ctaSecondary" json:"ctaSecondary"`
	ServicesTitle       string    `bson:"servicesTitle" json:"servicesTitle"`
	ServicesDescription string    `bson:"servicesDescription" json:"servicesDescription"`
	CallUsTitle         string    `bson:"callUsTitle" json:"callUsTitle"`
	CallUsText          string    `bson:"callUsText" json:"callUsText"`
	UpdatedAt           time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ContactInfo holds the firm's contact details and social links.
type ContactInfo struct {
	ID                string    `bson:"_id" json:"id"`
	Phone             string    `bson:"phone" json:"phone"`
	Email             string    `bson:"email" json:"email"`
	Address           string    `bson:"address" json:"address"`
	PhoneAvailability string    `bson:"phoneAvailability" json:"phoneAvailability"`
	OpeningHours      string    `bson:"openingHours" json:"openingHours"`
	Instagram         string    `bson:"instagram" json:"instagram"`
	Facebook          string    `bson:"facebook" json:"facebook"`
	TikTok            string    `bson:"tiktok" json:"tiktok"`
	UpdatedAt         time.Time `bson:"updatedAt" json:"updatedAt"`
}

// AboutValue is one entry in the "Our Values" list on the about page.
type AboutValue struct {
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
}

// AboutContent is the about page copy.
type AboutContent struct {
	ID               string       `bson:"_id" json:"id"`
	Title            string       `bson:"title" json:"title"`
	Paragraph1       string       `bson:"paragraph1" json:"paragraph1"`
	Paragraph2       string       `bson:"paragraph2" json:"paragraph2"`
	Paragraph3       string       `bson:"paragraph3" json:"paragraph3"`
	ValuesTitle      string       `bson:"valuesTitle" json:"valuesTitle"`
	Values           []AboutValue `bson:"values" json:"values"`
	ClosingStatement string       `bson:"closingStatement" json:"closingStatement"`
	UpdatedAt        time.Time    `bson:"updatedAt" json:"updatedAt"`
}

// PrivacyPolicy is the privacy page, one free-text field per section of
// the firm's legal-policy template.
type PrivacyPolicy struct {
	ID                         string    `bson:"_id" json:"id"`
	LastUpdated                string    `bson:"lastUpdated" json:"lastUpdated"`
	CompanyRegistration        string    `bson:"companyRegistration" json:"companyRegistration"`
	WhoWeAre                   string    `bson:"whoWeAre" json:"whoWeAre"`
	Address                    string    `bson:"address" json:"address"`
	ContactPhone               string    `bson:"contactPhone" json:"contactPhone"`
	ContactEmail               string    `bson:"contactEmail" json:"contactEmail"`
	WhatWeCollectInfo          string    `bson:"whatWeCollectInfo" json:"whatWeCollectInfo"`
	CollectingDataInfo         string    `bson:"collectingDataInfo" json:"collectingDataInfo"`
	WhyWeUseDataInfo           string    `bson:"whyWeUseDataInfo" json:"whyWeUseDataInfo"`
	LegalBasisInfo             string    `bson:"legalBasisInfo" json:"legalBasisInfo"`
	DataStorageInfo            string    `bson:"dataStorageInfo" json:"dataStorageInfo"`
	DataRetentionInfo          string    `bson:"dataRetentionInfo" json:"dataRetentionInfo"`
	SharingDataIntro           string    `bson:"sharingDataIntro" json:"sharingDataIntro"`
	SharingDataInfo            string    `bson:"sharingDataInfo" json:"sharingDataInfo"`
	YourRightsInfo             string    `bson:"yourRightsInfo" json:"yourRightsInfo"`
	CookiesInfo                string    `bson:"cookiesInfo" json:"cookiesInfo"`
	InternationalTransfersInfo string    `bson:"internationalTransfersInfo" json:"internationalTransfersInfo"`
	ComplaintsInfo             string    `bson:"complaintsInfo" json:"complaintsInfo"`
	ComplaintsEmail1           string    `bson:"complaintsEmail1" json:"complaintsEmail1"`
	ComplaintsEmail2           string    `bson:"complaintsEmail2" json:"complaintsEmail2"`
	IAAPortalURL               string    `bson:"iaaPortalUrl" json:"iaaPortalUrl"`
	IAAEmail                   string    `bson:"iaaEmail" json:"iaaEmail"`
	UpdatesInfo                string    `bson:"updatesInfo" json:"updatesInfo"`
	UpdatedAt                  time.Time `bson:"updatedAt" json:"updatedAt"`
}

// DefaultHeroContent returns the fallback hero banner copy.
func DefaultHeroContent() HeroContent {
	return HeroContent{
		ID:           ContentDocHero,
		Heading:      "Trusted Immigration & Advisory Services",
		Subtext:      "Expert support for visas, appeals, benefits and legal documentation — clear guidance at every step so you can move forward with confidence.",
		CTAPrimary:   "Book a Consultation",
		CTASecondary: "View Services",
		UpdatedAt:    time.Unix(0, 0).UTC(),
	}
}

// DefaultHomeContent returns the fallback home page copy.
func DefaultHomeContent() HomeContent {
	return HomeContent{
		ID:                  ContentDocHome,
		Heading:             "Trusted Immigration & Advisory Services",
		Subtext:             "Expert support for visas, appeals, benefits and legal documentation — clear guidance at every step so you can move forward with confidence.",
		CTAPrimary:          "Book a Consultation",
		CTASecondary:        "View Services",
		ServicesTitle:       "OUR SERVICES",
		ServicesDescription: "From complex visa applications and immigration appeals to benefits assessments and welfare support, we provide expert legal documentation and advocacy services tailored to your unique circumstances. Our experienced team ensures you understand every stage of the process, empowering you with the clarity and confidence needed to navigate challenging situations with dignity and assurance.",
		CallUsTitle:         "CALL US FOR ADVICE",
		CallUsText:          "Call us now on our phone number or send us an e-mail to get in touch.",
		UpdatedAt:           time.Unix(0, 0).UTC(),
	}
}

// DefaultContactInfo returns the fallback contact details.
func DefaultContactInfo() ContactInfo {
	return ContactInfo{
		ID:                ContentDocContact,
		Phone:             "03334040491",
		Email:             "info@bimaahinternationalltd.com",
		Address:           "10 Toronto Road, Tilbury, RM18 7RL United Kingdom",
		PhoneAvailability: "Available Mon-Fri",
		OpeningHours:      "Mon-Sat: 10:00am - 6:00pm\nSun: 2:00pm - 6:00pm",
		Instagram:         "https://www.instagram.com/bimaah2017?igsh=N3pyMmh2Y3J0Mmxx&utm_source=qr",
		Facebook:          "https://web.facebook.com/bimaahinternational",
		TikTok:            "https://www.tiktok.com/@bimaahinternational?_r=1&_t=ZN-934cAFesF1i",
		UpdatedAt:         time.Unix(0, 0).UTC(),
	}
}

// DefaultAboutContent returns the fallback about page copy.
func DefaultAboutContent() AboutContent {
	return AboutContent{
		ID:          ContentDocAbout,
		Title:       "About Us",
		Paragraph1:  "Navigating immigration, benefits, and legal processes can be challenging—especially when personal circumstances or systemic barriers make the journey even harder. Bimaah International Ltd is here to bring clarity, fairness, and accessible support to everyone who needs it.",
		Paragraph2:  "Our work is grounded in dignity, justice, and genuine care. With extensive experience in immigration advice, benefits guidance, legal documentation, and community advocacy, we provide strategic expertise delivered with empathy and respect.",
		Paragraph3:  "Whether you're applying for a visa, seeking support with benefits, or preparing essential legal documents, you can expect clear, professional guidance designed to empower you at every step.",
		ValuesTitle: "Our Values",
		Values: []AboutValue{
			{Title: "Accessibility for all", Description: "We ensure our services are available to everyone, regardless of financial circumstances."},
			{Title: "Professional integrity", Description: "We maintain the highest standards in all our work."},
			{Title: "Empathetic advocacy", Description: "We listen, understand, and advocate with compassion."},
			{Title: "Community empowerment", Description: "We uplift voices and build stronger communities."},
		},
		ClosingStatement: `"We don't just offer services—we build trust, uplift voices, and stand beside you every step of the way."`,
		UpdatedAt:        time.Unix(0, 0).UTC(),
	}
}

// DefaultPrivacyPolicy returns the fallback privacy policy.
func DefaultPrivacyPolicy() PrivacyPolicy {
	return PrivacyPolicy{
		ID:                         ContentDocPrivacy,
		LastUpdated:                "18/01/2026",
		CompanyRegistration:        "16557180",
		WhoWeAre:                   "Bimaah International Ltd is registered in England and Wales, company registration number 16557180. Our business address is 10 Toronto Road, Tilbury, RM18 7RL United Kingdom. We provide immigration advisory services, legal drafting, benefits guidance, training, and community support services.",
		Address:                    "10 Toronto Road, Tilbury, RM18 7RL United Kingdom",
		ContactPhone:               "03334040491",
		ContactEmail:               "info@bimaahinternationalltd.com",
		WhatWeCollectInfo:          "We collect personal identification data (name, date of birth, nationality, passport details), contact information (address, email, phone), immigration & legal information (visa history, case notes), financial & employment information (income, benefits), sensitive data (with explicit consent), and technical data from our website.",
		CollectingDataInfo:         "We collect personal data directly from you through consultations, online forms, documents you submit, and third parties with your consent. We may also gather publicly available information relevant to your case.",
		WhyWeUseDataInfo:           "We process your personal data to provide immigration and advisory services, prepare and submit applications, communicate about your case, comply with legal obligations, maintain records, and improve our services.",
		LegalBasisInfo:             "We rely on consent when you agree to us handling your data, contract to deliver requested services, legal obligation for compliance with UK law, and legitimate interest for efficient service delivery. For special category data, we rely on explicit consent or where processing is necessary for legal claims.",
		DataStorageInfo:            "We use encrypted digital storage, password-protected files, restricted staff access, and secure document disposal. Regular data protection training ensures ongoing compliance.",
		DataRetentionInfo:          "We retain your data for as long as necessary—typically 6 years after your case closes, unless legal obligations require otherwise.",
		SharingDataIntro:           "We do not sell or trade your personal information.",
		SharingDataInfo:            "We may share your data with the Home Office, solicitors or barristers (with consent), local authorities, professional partners assisting with your case, and regulators/law enforcement when legally required. All third parties comply with UK GDPR.",
		YourRightsInfo:             "You have the right to access, correct, delete, restrict, object to processing, withdraw consent, and request portability of your data. Contact us to exercise these rights.",
		CookiesInfo:                "If you use our website, we may use cookies to improve user experience. You can disable cookies in your browser settings.",
		InternationalTransfersInfo: "We do not routinely transfer your data outside the UK. If necessary, appropriate safeguards are in place.",
		ComplaintsInfo:             "Contact us first to resolve concerns about data handling.",
		ComplaintsEmail1:           "bimaahltd@gmail.com",
		ComplaintsEmail2:           "info@bimaahinternationalltd.com",
		IAAPortalURL:               "https://portal.oisc.gov.uk/s/complaints",
		IAAEmail:                   "info@immigrationadviceauthority.gov.uk",
		UpdatesInfo:                "We may update this Privacy Policy from time to time. The latest version will always be available on request or on our website.",
		UpdatedAt:                  time.Unix(0, 0).UTC(),
	}
}
