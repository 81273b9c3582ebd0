package routes

const (
	CreateViewRoute       string = "create_view"
	ViewRoute             string = "view"
	DeleteViewRoute       string = "delete_view"
	ReloadViewRoute       string = "reload_view"
	ViewFollowersRoute    string = "view_followers"
	ViewFollowingRoute    string = "view_following"
	ViewRelationshipRoute string = "view_relationship"
	ViewListsRoute        string = "view_lists"
	ViewToggleListRoute   string = "view_toggle_list"
	MetricsRoute          string = "metrics"
)
