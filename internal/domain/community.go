package domain

// Community is a named group of users. Manager is the login of the creator;
// it is provenance only and grants no extra runtime permissions. Members
// keeps logins in join order, creator first.
type Community struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Manager     string   `json:"manager"`
	Members     []string `json:"members"`
}

func NewCommunity(name, description, manager string) *Community {
	return &Community{
		Name:        name,
		Description: description,
		Manager:     manager,
	}
}

func (c *Community) AddMember(login string) {
	c.Members = append(c.Members, login)
}

// RemoveMember drops login from the member list, used when the account
// behind it is deleted.
func (c *Community) RemoveMember(login string) {
	c.Members = remove(c.Members, login)
}

// RenameMember rewrites a member's login in place, keeping join order. The
// manager field follows the rename as well.
func (c *Community) RenameMember(from, to string) {
	for i, m := range c.Members {
		if m == from {
			c.Members[i] = to
		}
	}
	if c.Manager == from {
		c.Manager = to
	}
}

// MemberList renders the member list for the query surface.
func (c *Community) MemberList() string {
	return FormatList(c.Members)
}
