// internal/app/store/content/fields.go
package contentstore

import (
	"github.com/bimaah/advisoryhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
)

// FieldsFrom* flatten a typed content record into the field map Upsert
// expects. Used by seeding and by the dashboard editors, which build the
// map from form input and write only what changed.

// FieldsFromHero returns the stored field map for a hero record.
func FieldsFromHero(h models.HeroContent) bson.M {
	return bson.M{
		"heading":      h.Heading,
		"subtext":      h.Subtext,
		"ctaPrimary":   h.CTAPrimary,
		"ctaSecondary": h.CTASecondary,
	}
}

// FieldsFromHome returns the stored field map for a home record.
func FieldsFromHome(h models.HomeContent) bson.M {
	return bson.M{
		"heading":             h.Heading,
		"subtext":             h.Subtext,
		"ctaPrimary":          h.CTAPrimary,
		"ctaSecondary":        h.CTASecondary,
		"servicesTitle":       h.ServicesTitle,
		"servicesDescription": h.ServicesDescription,
		"callUsTitle":         h.CallUsTitle,
		"callUsText":          h.CallUsText,
	}
}

// FieldsFromContact returns the stored field map for a contact record.
func FieldsFromContact(c models.ContactInfo) bson.M {
	return bson.M{
		"phone":             c.Phone,
		"email":             c.Email,
		"address":           c.Address,
		"phoneAvailability": c.PhoneAvailability,
		"openingHours":      c.OpeningHours,
		"instagram":         c.Instagram,
		"facebook":          c.Facebook,
		"tiktok":            c.TikTok,
	}
}

// FieldsFromAbout returns the stored field map for an about record.
func FieldsFromAbout(a models.AboutContent) bson.M {
	values := make([]bson.M, 0, len(a.Values))
	for _, v := range a.Values {
		values = append(values, bson.M{
			"title":       v.Title,
			"description": v.Description,
		})
	}
	return bson.M{
		"title":            a.Title,
		"paragraph1":       a.Paragraph1,
		"paragraph2":       a.Paragraph2,
		"paragraph3":       a.Paragraph3,
		"valuesTitle":      a.ValuesTitle,
		"values":           values,
		"closingStatement": a.ClosingStatement,
	}
}

// FieldsFromPrivacy returns the stored field map for a privacy record.
func FieldsFromPrivacy(p models.PrivacyPolicy) bson.M {
	return bson.M{
		"lastUpdated":                p.LastUpdated,
		"companyRegistration":        p.CompanyRegistration,
		"whoWeAre":                   p.WhoWeAre,
		"address":                    p.Address,
		"contactPhone":               p.ContactPhone,
		"contactEmail":               p.ContactEmail,
		"whatWeCollectInfo":          p.WhatWeCollectInfo,
		"collectingDataInfo":         p.CollectingDataInfo,
		"whyWeUseDataInfo":           p.WhyWeUseDataInfo,
		"legalBasisInfo":             p.LegalBasisInfo,
		"dataStorageInfo":            p.DataStorageInfo,
		"dataRetentionInfo":          p.DataRetentionInfo,
		"sharingDataIntro":           p.SharingDataIntro,
		"sharingDataInfo":            p.SharingDataInfo,
		"yourRightsInfo":             p.YourRightsInfo,
		"cookiesInfo":                p.CookiesInfo,
		"internationalTransfersInfo": p.InternationalTransfersInfo,
		"complaintsInfo":             p.ComplaintsInfo,
		"complaintsEmail1":           p.ComplaintsEmail1,
		"complaintsEmail2":           p.ComplaintsEmail2,
		"iaaPortalUrl":               p.IAAPortalURL,
		"iaaEmail":                   p.IAAEmail,
		"updatesInfo":                p.UpdatesInfo,
	}
}
