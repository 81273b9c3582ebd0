package headercolor

import "github.com/estrys/fediprofile/internal/mastodon"

// HeaderImage picks the banner of an account, the avatar standing in when no header was uploaded.
func HeaderImage(account *mastodon.Account) (header, headerStatic string, isAvatar bool) {
	header, headerStatic = account.Header, account.HeaderStatic
	if !mastodon.IsMissingImage(header) {
		return header, headerStatic, false
	}
	if mastodon.IsMissingImage(account.Avatar) {
		return header, headerStatic, false
	}
	header = account.Avatar
	if !mastodon.IsMissingImage(account.AvatarStatic) {
		headerStatic = account.AvatarStatic
	}
	return header, headerStatic, true
}
