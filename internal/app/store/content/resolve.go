// internal/app/store/content/resolve.go
package contentstore

import (
	"github.com/bimaah/advisoryhub/internal/app/store/storeutil"
	"github.com/bimaah/advisoryhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
)

// Resolvers merge a raw field map against the hardcoded default record,
// field by field. A stored field wins only when present and of a usable
// kind; otherwise that one field falls back. The merge is shallow:
// nested arrays (about values, service items) are replaced wholesale
// when present, never merged element-wise. Output always fully
// conforms to the target type.

// ResolveHero merges a raw hero document with the fallback record.
func ResolveHero(raw bson.M) models.HeroContent {
	def := models.DefaultHeroContent()
	return models.HeroContent{
		ID:           models.ContentDocHero,
		Heading:      storeutil.Str(raw, "heading", def.Heading),
		Subtext:      storeutil.Str(raw, "subtext", def.Subtext),
		CTAPrimary:   storeutil.Str(raw, "ctaPrimary", def.CTAPrimary),
		CTASecondary: storeutil.Str(raw, "ctaSecondary", def.CTASecondary),
		UpdatedAt:    storeutil.Time(raw, "updatedAt"),
	}
}

// ResolveHome merges a raw home document with the fallback record.
func ResolveHome(raw bson.M) models.HomeContent {
	def := models.DefaultHomeContent()
	return models.HomeContent{
		ID:                  models.ContentDocHome,
		Heading:             storeutil.Str(raw, "heading", def.Heading),
		Subtext:             storeutil.Str(raw, "subtext", def.Subtext),
		CTAPrimary:          storeutil.Str(raw, "ctaPrimary", def.CTAPrimary),
		CTASecondary:        storeutil.Str(raw, "ctaSecondary", def.CTASecondary),
		ServicesTitle:       storeutil.Str(raw, "servicesTitle", def.ServicesTitle),
		ServicesDescription: storeutil.Str(raw, "servicesDescription", def.ServicesDescription),
		CallUsTitle:         storeutil.Str(raw, "callUsTitle", def.CallUsTitle),
		CallUsText:          storeutil.Str(raw, "callUsText", def.CallUsText),
		UpdatedAt:           storeutil.Time(raw, "updatedAt"),
	}
}

// ResolveContact merges a raw contact document with the fallback record.
func ResolveContact(raw bson.M) models.ContactInfo {
	def := models.DefaultContactInfo()
	return models.ContactInfo{
		ID:                models.ContentDocContact,
		Phone:             storeutil.Str(raw, "phone", def.Phone),
		Email:             storeutil.Str(raw, "email", def.Email),
		Address:           storeutil.Str(raw, "address", def.Address),
		PhoneAvailability: storeutil.Str(raw, "phoneAvailability", def.PhoneAvailability),
		OpeningHours:      storeutil.Str(raw, "openingHours", def.OpeningHours),
		Instagram:         storeutil.Str(raw, "instagram", def.Instagram),
		Facebook:          storeutil.Str(raw, "facebook", def.Facebook),
		TikTok:            storeutil.Str(raw, "tiktok", def.TikTok),
		UpdatedAt:         storeutil.Time(raw, "updatedAt"),
	}
}

// ResolveAbout merges a raw about document with the fallback record.
func ResolveAbout(raw bson.M) models.AboutContent {
	def := models.DefaultAboutContent()
	return models.AboutContent{
		ID:               models.ContentDocAbout,
		Title:            storeutil.Str(raw, "title", def.Title),
		Paragraph1:       storeutil.Str(raw, "paragraph1", def.Paragraph1),
		Paragraph2:       storeutil.Str(raw, "paragraph2", def.Paragraph2),
		Paragraph3:       storeutil.Str(raw, "paragraph3", def.Paragraph3),
		ValuesTitle:      storeutil.Str(raw, "valuesTitle", def.ValuesTitle),
		Values:           valuesOr(raw, "values", def.Values),
		ClosingStatement: storeutil.Str(raw, "closingStatement", def.ClosingStatement),
		UpdatedAt:        storeutil.Time(raw, "updatedAt"),
	}
}

// ResolvePrivacy merges a raw privacy document with the fallback record.
func ResolvePrivacy(raw bson.M) models.PrivacyPolicy {
	def := models.DefaultPrivacyPolicy()
	return models.PrivacyPolicy{
		ID:                         models.ContentDocPrivacy,
		LastUpdated:                storeutil.Str(raw, "lastUpdated", def.LastUpdated),
		CompanyRegistration:        storeutil.Str(raw, "companyRegistration", def.CompanyRegistration),
		WhoWeAre:                   storeutil.Str(raw, "whoWeAre", def.WhoWeAre),
		Address:                    storeutil.Str(raw, "address", def.Address),
		ContactPhone:               storeutil.Str(raw, "contactPhone", def.ContactPhone),
		ContactEmail:               storeutil.Str(raw, "contactEmail", def.ContactEmail),
		WhatWeCollectInfo:          storeutil.Str(raw, "whatWeCollectInfo", def.WhatWeCollectInfo),
		CollectingDataInfo:         storeutil.Str(raw, "collectingDataInfo", def.CollectingDataInfo),
		WhyWeUseDataInfo:           storeutil.Str(raw, "whyWeUseDataInfo", def.WhyWeUseDataInfo),
		LegalBasisInfo:             storeutil.Str(raw, "legalBasisInfo", def.LegalBasisInfo),
		DataStorageInfo:            storeutil.Str(raw, "dataStorageInfo", def.DataStorageInfo),
		DataRetentionInfo:          storeutil.Str(raw, "dataRetentionInfo", def.DataRetentionInfo),
		SharingDataIntro:           storeutil.Str(raw, "sharingDataIntro", def.SharingDataIntro),
		SharingDataInfo:            storeutil.Str(raw, "sharingDataInfo", def.SharingDataInfo),
		YourRightsInfo:             storeutil.Str(raw, "yourRightsInfo", def.YourRightsInfo),
		CookiesInfo:                storeutil.Str(raw, "cookiesInfo", def.CookiesInfo),
		InternationalTransfersInfo: storeutil.Str(raw, "internationalTransfersInfo", def.InternationalTransfersInfo),
		ComplaintsInfo:             storeutil.Str(raw, "complaintsInfo", def.ComplaintsInfo),
		ComplaintsEmail1:           storeutil.Str(raw, "complaintsEmail1", def.ComplaintsEmail1),
		ComplaintsEmail2:           storeutil.Str(raw, "complaintsEmail2", def.ComplaintsEmail2),
		IAAPortalURL:               storeutil.Str(raw, "iaaPortalUrl", def.IAAPortalURL),
		IAAEmail:                   storeutil.Str(raw, "iaaEmail", def.IAAEmail),
		UpdatesInfo:                storeutil.Str(raw, "updatesInfo", def.UpdatesInfo),
		UpdatedAt:                  storeutil.Time(raw, "updatedAt"),
	}
}

// valuesOr returns the stored values list for key, or def when the
// field is missing or not an array. A stored array replaces the
// default wholesale.
func valuesOr(raw bson.M, key string, def []models.AboutValue) []models.AboutValue {
	arr, ok := storeutil.Array(raw[key])
	if !ok {
		return def
	}
	out := make([]models.AboutValue, 0, len(arr))
	for _, el := range arr {
		m, ok := storeutil.Map(el)
		if !ok {
			continue
		}
		out = append(out, models.AboutValue{
			Title:       storeutil.Str(m, "title", ""),
			Description: storeutil.Str(m, "description", ""),
		})
	}
	return out
}
