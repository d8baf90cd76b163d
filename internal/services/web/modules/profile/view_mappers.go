package profile

import (
	"strings"
	"time"

	webi18n "github.com/louisbranch/mindmap.space/internal/services/web/platform/i18n"
	"github.com/louisbranch/mindmap.space/internal/services/web/platform/member"
	"github.com/louisbranch/mindmap.space/internal/services/web/templates"
)

// buildView maps a member record onto the profile page. Empty values are
// left out so their section can fall back to "Not provided".
func buildView(loc webi18n.Localizer, record member.Member) templates.ProfileView {
	fallback := templates.T(loc, "web.profile.fallback_name")
	status := strings.TrimSpace(record.Status)
	if status == "" {
		status = templates.T(loc, "web.profile.status_default")
	}
	view := templates.ProfileView{
		DisplayName: record.DisplayName(fallback),
		Initial:     record.Initial(fallback),
		PhotoURL:    strings.TrimSpace(record.PhotoURL),
		Title:       strings.TrimSpace(record.Title),
		Status:      status,
		Verified:    record.LoginEmailVerified,
	}
	view.Contact = appendField(view.Contact, "web.profile.contact.email", record.LoginEmail)
	view.Contact = appendField(view.Contact, "web.profile.contact.first_name", record.FirstName)
	view.Contact = appendField(view.Contact, "web.profile.contact.last_name", record.LastName)
	view.Contact = appendField(view.Contact, "web.profile.contact.phone", record.PrimaryPhone())
	view.Account = appendDate(view.Account, loc, "web.profile.account.member_since", record.CreatedAt)
	view.Account = appendDate(view.Account, loc, "web.profile.account.last_login", record.LastLoginAt)
	view.Account = appendDate(view.Account, loc, "web.profile.account.updated", record.UpdatedAt)
	return view
}

func appendField(fields []templates.ProfileField, labelKey string, value string) []templates.ProfileField {
	value = strings.TrimSpace(value)
	if value == "" {
		return fields
	}
	return append(fields, templates.ProfileField{LabelKey: labelKey, Value: value})
}

func appendDate(fields []templates.ProfileField, loc webi18n.Localizer, labelKey string, t time.Time) []templates.ProfileField {
	return appendField(fields, labelKey, webi18n.FormatLongDate(loc, t))
}
