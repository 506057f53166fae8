package catalog

import "github.com/samber/lo"

// OrganizationSummary aggregates the records of one organization.
type OrganizationSummary struct {
	Organization string        `json:"organization"`
	Models       []ModelRecord `json:"models"`
	TotalTokens  float64       `json:"totalTokens"`
	TopModel     string        `json:"topModel"`
}

// ForOrganization collects the records whose organization matches org,
// ignoring case. TopModel is the name of the record with the most tokens, or
// "N/A" when nothing matches.
func ForOrganization(records []ModelRecord, org string) OrganizationSummary {
	models := lo.Filter(records, func(r ModelRecord, _ int) bool {
		return equalFold(r.Organization, org)
	})

	summary := OrganizationSummary{
		Organization: org,
		Models:       models,
		TopModel:     "N/A",
	}
	var best float64
	for i, m := range models {
		summary.TotalTokens += m.Tokens
		if i == 0 || m.Tokens > best {
			best = m.Tokens
			summary.TopModel = m.Name
		}
	}
	summary.TotalTokens = round2(summary.TotalTokens)
	return summary
}

// Organizations returns the distinct organizations in first-seen order.
func Organizations(records []ModelRecord) []string {
	return lo.Uniq(lo.Map(records, func(r ModelRecord, _ int) string {
		return r.Organization
	}))
}
