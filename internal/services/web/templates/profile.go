package templates

// ProfileField is one labelled value of the profile details.
type ProfileField struct {
	LabelKey string
	Value    string
}

// ProfileView is the data rendered by ProfilePage. Dates are already
// formatted for the page language.
type ProfileView struct {
	DisplayName string
	Initial     string
	PhotoURL    string
	Title       string
	Status      string
	Verified    bool
	Contact     []ProfileField
	Account     []ProfileField
}

var journeyStats = []string{
	"web.profile.journey.mindmaps",
	"web.profile.journey.connections",
	"web.profile.journey.ideas",
}
