package github

// Repository is an owned, non-fork repository with the languages GitHub
// reports for it, largest first. It is the unit cached between fetches so
// that different weights and exclusions reuse one upstream response.
type Repository struct {
	Name      string         `json:"name"`
	Languages []RepoLanguage `json:"languages,omitempty"`
}

// RepoLanguage is one language of a repository.
type RepoLanguage struct {
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
	Size  int64  `json:"size"` // bytes of code
}

// graphQLRequest is the body of a POST to the GraphQL endpoint.
type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// graphQLError is one entry of a GraphQL "errors" array.
type graphQLError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// languagesResponse is the internal GraphQL response for [languagesQuery].
type languagesResponse struct {
	Data struct {
		User *struct {
			Repositories struct {
				Nodes []struct {
					Name      string `json:"name"`
					Languages struct {
						Edges []struct {
							Size int64 `json:"size"`
							Node struct {
								Color string `json:"color"`
								Name  string `json:"name"`
							} `json:"node"`
						} `json:"edges"`
					} `json:"languages"`
				} `json:"nodes"`
			} `json:"repositories"`
		} `json:"user"`
	} `json:"data"`
	Errors []graphQLError `json:"errors,omitempty"`
}

// repositories flattens the response into [Repository] values.
func (r *languagesResponse) repositories() []Repository {
	if r.Data.User == nil {
		return nil
	}
	nodes := r.Data.User.Repositories.Nodes
	repos := make([]Repository, 0, len(nodes))
	for _, n := range nodes {
		repo := Repository{Name: n.Name}
		for _, e := range n.Languages.Edges {
			repo.Languages = append(repo.Languages, RepoLanguage{
				Name:  e.Node.Name,
				Color: e.Node.Color,
				Size:  e.Size,
			})
		}
		repos = append(repos, repo)
	}
	return repos
}
