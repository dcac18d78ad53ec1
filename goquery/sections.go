package goquery

import (
	"github.com/fwojciec/locprof"
)

func extractAbout(d *Document) *string {
	r := d.Locate(locprof.LabelAbout)
	if r == nil {
		return nil
	}
	body := r.BodyText()
	return &body
}

func extractExperience(d *Document) *locprof.Experience {
	r := d.Locate(locprof.LabelExperience)
	if r == nil {
		return nil
	}
	roles := []locprof.RoleEntry{}
	for _, a := range r.Anchors(locprof.MinRoleAnchorLen) {
		roles = append(roles, locprof.RoleEntry{RawText: a.Text, Path: a.Path})
	}
	return &locprof.Experience{
		Roles:        roles,
		Logos:        r.Logos(),
		Descriptions: locprof.DescriptionFragments(r.BodyText()),
	}
}

func extractEducation(d *Document) *locprof.Education {
	r := d.Locate(locprof.LabelEducation)
	if r == nil {
		return nil
	}
	entries := []locprof.EducationEntry{}
	for _, a := range r.Anchors(locprof.MinEducationAnchorLen) {
		entries = append(entries, locprof.EducationEntry{RawText: a.Text, Path: a.Path})
	}
	return &locprof.Education{Entries: entries, Logos: r.Logos()}
}

func extractCertifications(d *Document) *locprof.Certifications {
	r := d.Locate(locprof.LabelCertifications)
	if r == nil {
		return nil
	}
	entries := []locprof.CertificationEntry{}
	for _, a := range r.Anchors(locprof.MinCertificationAnchorLen) {
		entries = append(entries, locprof.CertificationEntry{RawText: a.Text, Path: a.Path})
	}
	return &locprof.Certifications{Entries: entries, Logos: r.Logos()}
}

func extractSkills(d *Document) []locprof.Skill {
	r := d.Locate(locprof.LabelSkills)
	if r == nil {
		return nil
	}
	return locprof.ParseSkills(r.BodyText())
}

func extractRecommendations(d *Document) []locprof.Recommendation {
	r := d.Locate(locprof.LabelRecommendations)
	if r == nil {
		return nil
	}
	return locprof.ParseRecommendations(r.BodyText())
}

func extractLanguages(d *Document) []string {
	r := d.Locate(locprof.LabelLanguages)
	if r == nil {
		return nil
	}
	languages := []string{}
	for _, item := range r.Items() {
		if locprof.RuneLen(item.Text) > locprof.MinLanguageLen {
			languages = append(languages, item.Text)
		}
	}
	return languages
}

func extractActivity(d *Document) *locprof.Activity {
	r := d.Locate(locprof.LabelActivity)
	if r == nil {
		return nil
	}
	posts := []locprof.Post{}
	for _, item := range r.Items() {
		if locprof.RuneLen(item.Text) > locprof.MinPostLen {
			posts = append(posts, locprof.ParsePost(item.Text))
		}
	}
	return &locprof.Activity{
		Followers: locprof.FollowerCount(r.BodyText()),
		Posts:     posts,
	}
}

func extractFeatured(d *Document) []locprof.FeaturedItem {
	r := d.Locate(locprof.LabelFeatured)
	if r == nil {
		return nil
	}
	featured := []locprof.FeaturedItem{}
	for _, item := range r.Items() {
		if locprof.RuneLen(item.Text) > locprof.MinFeaturedLen {
			featured = append(featured, locprof.FeaturedItem{
				Text: locprof.Truncate(item.Text, locprof.MaxFeaturedLen),
				Path: item.Path,
			})
		}
	}
	return featured
}

func extractInterests(d *Document) []locprof.Interest {
	r := d.Locate(locprof.LabelInterests)
	if r == nil {
		return nil
	}
	interests := []locprof.Interest{}
	for _, item := range r.Items() {
		if locprof.RuneLen(item.Text) > locprof.MinInterestLen {
			interests = append(interests, locprof.ParseInterest(item.Text))
		}
	}
	return interests
}
