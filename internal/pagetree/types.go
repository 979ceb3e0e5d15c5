package pagetree

// Content-type discriminators stored on each tree node. Handlers dispatch
// on these to load the node's type-specific record.
const (
	TypeHomePage        = "homepage"
	TypeStandardPage    = "standardpage"
	TypeBlogIndexPage   = "blogindexpage"
	TypeBlogPage        = "blogpage"
	TypeJobIndexPage    = "jobindexpage"
	TypeJobPage         = "jobpage"
	TypeWorkIndexPage   = "workindexpage"
	TypeWorkPage        = "workpage"
	TypePersonIndexPage = "personindexpage"
	TypePersonPage      = "personpage"
)
