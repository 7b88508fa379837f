package giturl

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// addressPattern is the single grammar for accepted remote addresses.
// It recognises the two conventional encodings of a remote address:
// HTTP(S) form (https://host/project) and SSH form (git@host:project),
// either optionally suffixed with .git. Matching is anchored at both
// ends; partial matches are rejected.
//
// Hosts with port numbers and project paths containing dots do not
// match. That mirrors how remotes are overwhelmingly configured in
// practice; an address outside the grammar signals a misconfiguration
// the user should fix rather than something to silently accept.
var addressPattern = regexp.MustCompile(`^(https?://|git@)([^:/]+)[:/]([\w/-]+)(\.git)?$`)

// WebURL is the canonical browsable form of a remote address.
type WebURL struct {
	Host    string
	Project string
}

// Derive normalizes a raw remote address into its canonical web URL.
// It is a pure function: no process execution, no I/O. Addresses that
// do not match the accepted grammar yield an InvalidAddressError.
func Derive(address string) (WebURL, error) {
	m := addressPattern.FindStringSubmatch(address)
	if m == nil {
		return WebURL{}, &InvalidAddressError{Address: address}
	}
	return WebURL{Host: m[2], Project: m[3]}, nil
}

// String renders the URL as https://host/project. The scheme is always
// https and any .git suffix present in the source address is gone; no
// other transformation (percent-encoding, case-folding) is applied.
func (u WebURL) String() string {
	return "https://" + u.Host + "/" + u.Project
}

// BranchURL renders the page for a branch. The path segment differs by
// forge: gitlab.com uses /-/tree/, everything else uses /tree/.
func (u WebURL) BranchURL(branch string) string {
	if isGitLab(u.Host) {
		return u.String() + "/-/tree/" + branch
	}
	return u.String() + "/tree/" + branch
}

// CommitURL renders the page for a single commit.
func (u WebURL) CommitURL(hash string) string {
	switch {
	case isGitLab(u.Host):
		return u.String() + "/-/commit/" + hash
	case strings.EqualFold(u.Host, "bitbucket.org"):
		return u.String() + "/commits/" + hash
	default:
		return u.String() + "/commit/" + hash
	}
}

func isGitLab(host string) bool {
	return strings.EqualFold(host, "gitlab.com")
}

// InvalidAddressError reports a remote address that does not match the
// accepted grammar. The offending address is carried verbatim so the
// user can see exactly which remote is misconfigured.
type InvalidAddressError struct {
	Address string
}

func (e *InvalidAddressError) Error() string {
	return fmt.Sprintf("invalid git address %q", e.Address)
}

// IsInvalidAddressError checks if an error is an InvalidAddressError.
func IsInvalidAddressError(err error) bool {
	var target *InvalidAddressError
	return errors.As(err, &target)
}
