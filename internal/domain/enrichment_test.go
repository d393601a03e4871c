package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullEnrichment = `{
	"about": {
		"name": "Acme Corporation",
		"industry": "Software",
		"industries": ["Software", "Cloud", "Security"],
		"yearFounded": "1999",
		"totalEmployees": "1k-5k",
		"totalEmployeesExact": 1250
	},
	"locations": {"headquarters": {"city": {"name": "Austin"}, "country": {"name": "United States"}}},
	"finances": {"revenue": "10m-50m"},
	"analytics": {"monthlyVisitors": 50000},
	"socials": {"linkedin": {"url": "https://linkedin.com/company/acme"}, "twitter": {}},
	"descriptions": {"primary": "Anvils and rockets", "tagline": "Beep beep"},
	"assets": {"logoSquare": {"src": "https://cdn.example.com/acme.png"}}
}`

func TestParseCompanyEnrichment_Projections(t *testing.T) {
	doc, err := ParseCompanyEnrichment([]byte(fullEnrichment))
	require.NoError(t, err)

	assert.Equal(t, "Acme Corporation", doc.DisplayName())
	assert.Equal(t, "Software", doc.PrimaryIndustry())
	assert.Equal(t, []string{"Software", "Cloud", "Security"}, doc.Industries())
	assert.Equal(t, []string{"Cloud", "Security"}, doc.SecondaryIndustries())
	require.NotNil(t, doc.YearFounded())
	assert.Equal(t, 1999, *doc.YearFounded())
	assert.Equal(t, "1,250 employees", doc.Employees())
	assert.Equal(t, "1k-5k", doc.EmployeesRange())
	assert.Equal(t, Revenue10MTo50M, doc.Revenue())
	assert.Equal(t, "50000", doc.MonthlyVisitors())
	assert.Equal(t, "Anvils and rockets", doc.Description())
	assert.Equal(t, "Beep beep", doc.Tagline())
	assert.Equal(t, "https://cdn.example.com/acme.png", doc.LogoURL())
	assert.Equal(t, "Austin, United States", doc.Headquarters())
	assert.Equal(t, map[string]string{"linkedin": "https://linkedin.com/company/acme"}, doc.SocialLinks())
}

func TestCompanyEnrichment_MissingLevelsReturnDefaults(t *testing.T) {
	docs := map[string]string{
		"null":         `null`,
		"vazio":        ``,
		"objeto vazio": `{}`,
		"níveis vazios": `{"about": {}, "locations": {"headquarters": {}}, "finances": {},
			"analytics": {}, "descriptions": {}, "assets": {"logoSquare": {}}, "socials": {}}`,
	}

	for name, raw := range docs {
		t.Run(name, func(t *testing.T) {
			doc, err := ParseCompanyEnrichment([]byte(raw))
			require.NoError(t, err)

			assert.Empty(t, doc.DisplayName())
			assert.Empty(t, doc.PrimaryIndustry())
			assert.Empty(t, doc.Industries())
			assert.Empty(t, doc.SecondaryIndustries())
			assert.Nil(t, doc.YearFounded())
			assert.Empty(t, doc.Employees())
			assert.Equal(t, RevenueBracket(""), doc.Revenue())
			assert.Empty(t, doc.MonthlyVisitors())
			assert.Empty(t, doc.LogoURL())
			assert.Empty(t, doc.Headquarters())
			assert.Empty(t, doc.SocialLinks())
		})
	}

	var nilDoc *CompanyEnrichment
	assert.Empty(t, nilDoc.Description())
	assert.Empty(t, nilDoc.City())
}

func TestFlexibleInt(t *testing.T) {
	tests := []struct {
		raw      string
		expected *int
	}{
		{raw: `{"about": {"yearFounded": 2001}}`, expected: intPtr(2001)},
		{raw: `{"about": {"yearFounded": "2001"}}`, expected: intPtr(2001)},
		{raw: `{"about": {"yearFounded": 2001.0}}`, expected: intPtr(2001)},
		{raw: `{"about": {"yearFounded": null}}`, expected: nil},
	}

	for _, tt := range tests {
		doc, err := ParseCompanyEnrichment([]byte(tt.raw))
		require.NoError(t, err)
		assert.Equal(t, tt.expected, doc.YearFounded(), tt.raw)
	}
}

func TestParsePersonEnrichment(t *testing.T) {
	raw := `{
		"skills": ["go", "sql"],
		"data": {"work_email": "jane@acme.io", "mobile_phone": "+1 555", "location_street_address": "1 Main St", "location_postal_code": "78701"},
		"socials": {"linkedin": {"url": "https://linkedin.com/in/jane"}}
	}`

	doc, err := ParsePersonEnrichment([]byte(raw))
	require.NoError(t, err)

	assert.Equal(t, []string{"go", "sql"}, doc.SkillList())
	assert.Equal(t, "jane@acme.io", doc.WorkEmail())
	assert.Equal(t, "+1 555", doc.MobilePhone())
	assert.Equal(t, "1 Main St, 78701", doc.Address())
	assert.Equal(t, map[string]string{"linkedin": "https://linkedin.com/in/jane"}, doc.SocialLinks())

	empty, err := ParsePersonEnrichment(nil)
	require.NoError(t, err)
	assert.Empty(t, empty.WorkEmail())
	assert.Empty(t, empty.SkillList())
}

func TestNewCompanyDetail(t *testing.T) {
	doc, err := ParseCompanyEnrichment([]byte(fullEnrichment))
	require.NoError(t, err)

	company := Company{ID: 1, Name: "acme", Domain: "mail.gmail.com", Enrichment: doc}
	detail := NewCompanyDetail(company, nil, NewConsumerDomains(DefaultConsumerDomains()))

	assert.Equal(t, "Acme Corporation", detail.DisplayName)
	assert.Equal(t, "$10M to $50M", detail.RevenueLabel)
	assert.Equal(t, "https://mail.gmail.com", detail.WebsiteURL)
	assert.True(t, detail.IsConsumer)
	assert.NotNil(t, detail.Orders)
	assert.Equal(t, 0, detail.TotalOrders)

	bare := NewCompanyDetail(Company{ID: 2, Name: "Bare", Domain: "bare.io"}, nil, NewConsumerDomains(nil))
	assert.Equal(t, "Bare", bare.DisplayName)
	assert.False(t, bare.IsConsumer)
	assert.Empty(t, bare.RevenueLabel)
}

func intPtr(i int) *int {
	return &i
}
