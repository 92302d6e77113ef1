package employee

import "strings"

// FullName joins first and last name with a single space. Empty parts are
// kept as they are, so a missing first name yields a leading space.
func FullName(e Employee) string {
	return e.FirstName + " " + e.LastName
}

// ActiveLabel is the two-state label of the isActive column.
func ActiveLabel(active bool) string {
	if active {
		return "Active"
	}
	return "Inactive"
}

// SkillTags renders skills as tags, left to right in data order.
func SkillTags(skills []string) string {
	tags := make([]string, 0, len(skills))
	for _, skill := range skills {
		tags = append(tags, "["+skill+"]")
	}
	return strings.Join(tags, " ")
}

// MailtoLink builds the link target of the email column.
func MailtoLink(email string) string {
	if email == "" {
		return ""
	}
	return "mailto:" + email
}
