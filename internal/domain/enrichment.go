package domain

import (
	"bytes"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var numberPrinter = message.NewPrinter(language.English)

// CompanyEnrichment é o documento de enriquecimento da empresa (companies.enrichment_data).
// Qualquer nível pode estar ausente; as projeções abaixo devolvem valores vazios nesses casos.
type CompanyEnrichment struct {
	About        *EnrichmentAbout        `json:"about,omitempty"`
	Locations    *EnrichmentLocations    `json:"locations,omitempty"`
	Finances     *EnrichmentFinances     `json:"finances,omitempty"`
	Analytics    *EnrichmentAnalytics    `json:"analytics,omitempty"`
	Socials      *EnrichmentSocials      `json:"socials,omitempty"`
	Descriptions *EnrichmentDescriptions `json:"descriptions,omitempty"`
	Assets       *EnrichmentAssets       `json:"assets,omitempty"`
}

type EnrichmentAbout struct {
	Name                *string      `json:"name,omitempty"`
	Industry            *string      `json:"industry,omitempty"`
	Industries          []string     `json:"industries,omitempty"`
	YearFounded         *FlexibleInt `json:"yearFounded,omitempty"`
	TotalEmployees      *string      `json:"totalEmployees,omitempty"`
	TotalEmployeesExact *FlexibleInt `json:"totalEmployeesExact,omitempty"`
}

type EnrichmentLocations struct {
	Headquarters *EnrichmentHeadquarters `json:"headquarters,omitempty"`
}

type EnrichmentHeadquarters struct {
	City    *EnrichmentNamed `json:"city,omitempty"`
	State   *EnrichmentNamed `json:"state,omitempty"`
	Country *EnrichmentNamed `json:"country,omitempty"`
}

type EnrichmentNamed struct {
	Name *string `json:"name,omitempty"`
}

type EnrichmentFinances struct {
	Revenue *string `json:"revenue,omitempty"`
}

type EnrichmentAnalytics struct {
	MonthlyVisitors *FlexibleString `json:"monthlyVisitors,omitempty"`
}

type EnrichmentSocials struct {
	LinkedIn  *EnrichmentLink `json:"linkedin,omitempty"`
	Twitter   *EnrichmentLink `json:"twitter,omitempty"`
	Facebook  *EnrichmentLink `json:"facebook,omitempty"`
	Instagram *EnrichmentLink `json:"instagram,omitempty"`
}

type EnrichmentLink struct {
	URL *string `json:"url,omitempty"`
}

type EnrichmentDescriptions struct {
	Primary *string `json:"primary,omitempty"`
	Tagline *string `json:"tagline,omitempty"`
}

type EnrichmentAssets struct {
	LogoSquare *EnrichmentAsset `json:"logoSquare,omitempty"`
}

type EnrichmentAsset struct {
	Src *string `json:"src,omitempty"`
}

// ParseCompanyEnrichment decodifica o jsonb bruto. Documento vazio ou "null" gera um documento vazio.
func ParseCompanyEnrichment(raw []byte) (*CompanyEnrichment, error) {
	doc := &CompanyEnrichment{}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return doc, nil
	}

	if err := json.Unmarshal(raw, doc); err != nil {
		return nil, err
	}

	return doc, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

func (e *CompanyEnrichment) DisplayName() string {
	if e == nil || e.About == nil {
		return ""
	}
	return deref(e.About.Name)
}

func (e *CompanyEnrichment) PrimaryIndustry() string {
	if e == nil || e.About == nil {
		return ""
	}
	return deref(e.About.Industry)
}

// Industries retorna a lista completa de indústrias, como veio no documento
func (e *CompanyEnrichment) Industries() []string {
	if e == nil || e.About == nil || len(e.About.Industries) == 0 {
		return []string{}
	}
	industries := make([]string, len(e.About.Industries))
	copy(industries, e.About.Industries)
	return industries
}

// SecondaryIndustries retorna as indústrias sem a principal
func (e *CompanyEnrichment) SecondaryIndustries() []string {
	primary := e.PrimaryIndustry()
	secondary := make([]string, 0)
	for _, industry := range e.Industries() {
		if industry == "" || industry == primary {
			continue
		}
		secondary = append(secondary, industry)
	}
	return secondary
}

func (e *CompanyEnrichment) YearFounded() *int {
	if e == nil || e.About == nil || e.About.YearFounded == nil {
		return nil
	}
	year := int(*e.About.YearFounded)
	return &year
}

// Employees prioriza a contagem exata ("1,250 employees") e cai para a faixa estimada
func (e *CompanyEnrichment) Employees() string {
	if e == nil || e.About == nil {
		return ""
	}
	if exact := e.About.TotalEmployeesExact; exact != nil && *exact > 0 {
		return numberPrinter.Sprintf("%d employees", int64(*exact))
	}
	return deref(e.About.TotalEmployees)
}

// EmployeesRange retorna apenas a faixa estimada de funcionários
func (e *CompanyEnrichment) EmployeesRange() string {
	if e == nil || e.About == nil {
		return ""
	}
	return deref(e.About.TotalEmployees)
}

func (e *CompanyEnrichment) Revenue() RevenueBracket {
	if e == nil || e.Finances == nil {
		return revenueBracketNone
	}
	return RevenueBracket(strings.ToLower(deref(e.Finances.Revenue)))
}

func (e *CompanyEnrichment) MonthlyVisitors() string {
	if e == nil || e.Analytics == nil || e.Analytics.MonthlyVisitors == nil {
		return ""
	}
	return strings.TrimSpace(string(*e.Analytics.MonthlyVisitors))
}

func (e *CompanyEnrichment) Description() string {
	if e == nil || e.Descriptions == nil {
		return ""
	}
	return deref(e.Descriptions.Primary)
}

func (e *CompanyEnrichment) Tagline() string {
	if e == nil || e.Descriptions == nil {
		return ""
	}
	return deref(e.Descriptions.Tagline)
}

func (e *CompanyEnrichment) LogoURL() string {
	if e == nil || e.Assets == nil || e.Assets.LogoSquare == nil {
		return ""
	}
	return deref(e.Assets.LogoSquare.Src)
}

func (e *CompanyEnrichment) headquarters() *EnrichmentHeadquarters {
	if e == nil || e.Locations == nil {
		return nil
	}
	return e.Locations.Headquarters
}

func (n *EnrichmentNamed) value() string {
	if n == nil {
		return ""
	}
	return deref(n.Name)
}

func (e *CompanyEnrichment) City() string {
	if hq := e.headquarters(); hq != nil {
		return hq.City.value()
	}
	return ""
}

func (e *CompanyEnrichment) State() string {
	if hq := e.headquarters(); hq != nil {
		return hq.State.value()
	}
	return ""
}

func (e *CompanyEnrichment) Country() string {
	if hq := e.headquarters(); hq != nil {
		return hq.Country.value()
	}
	return ""
}

// Headquarters monta "Cidade, Estado, País" ignorando partes ausentes
func (e *CompanyEnrichment) Headquarters() string {
	parts := make([]string, 0, 3)
	for _, part := range []string{e.City(), e.State(), e.Country()} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ", ")
}

func (l *EnrichmentLink) value() string {
	if l == nil {
		return ""
	}
	return deref(l.URL)
}

// SocialLinks retorna apenas as redes com URL preenchida
func (e *CompanyEnrichment) SocialLinks() map[string]string {
	socials := make(map[string]string)
	if e == nil || e.Socials == nil {
		return socials
	}

	for name, link := range map[string]*EnrichmentLink{
		"linkedin":  e.Socials.LinkedIn,
		"twitter":   e.Socials.Twitter,
		"facebook":  e.Socials.Facebook,
		"instagram": e.Socials.Instagram,
	} {
		if url := link.value(); url != "" {
			socials[name] = url
		}
	}
	return socials
}

// FlexibleInt aceita número, string numérica ou null no JSON
type FlexibleInt int64

func (f *FlexibleInt) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if raw == "" || raw == "null" {
		*f = 0
		return nil
	}

	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		*f = FlexibleInt(n)
		return nil
	}

	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		// valores não numéricos ("unknown") são tratados como ausentes
		*f = 0
		return nil
	}
	*f = FlexibleInt(n)
	return nil
}

// FlexibleString aceita string ou número no JSON
type FlexibleString string

func (f *FlexibleString) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*f = ""
		return nil
	}

	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexibleString(s)
		return nil
	}

	*f = FlexibleString(raw)
	return nil
}

// PersonEnrichment é o documento de enriquecimento de pessoas (people.enrichment_data)
type PersonEnrichment struct {
	Skills     []string               `json:"skills,omitempty"`
	Education  []PersonEducation      `json:"education,omitempty"`
	Experience []PersonExperience     `json:"experience,omitempty"`
	Socials    *EnrichmentSocials     `json:"socials,omitempty"`
	Data       *PersonEnrichmentExtra `json:"data,omitempty"`
}

type PersonEducation struct {
	School    *string `json:"school,omitempty"`
	Degree    *string `json:"degree,omitempty"`
	Field     *string `json:"field,omitempty"`
	StartYear *string `json:"start_year,omitempty"`
	EndYear   *string `json:"end_year,omitempty"`
}

type PersonExperience struct {
	Company   *string `json:"company,omitempty"`
	Title     *string `json:"title,omitempty"`
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
	IsPrimary *bool   `json:"is_primary,omitempty"`
}

type PersonEnrichmentExtra struct {
	WorkEmail             *string `json:"work_email,omitempty"`
	MobilePhone           *string `json:"mobile_phone,omitempty"`
	LocationStreetAddress *string `json:"location_street_address,omitempty"`
	LocationPostalCode    *string `json:"location_postal_code,omitempty"`
	JobTitle              *string `json:"job_title,omitempty"`
}

func ParsePersonEnrichment(raw []byte) (*PersonEnrichment, error) {
	doc := &PersonEnrichment{}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return doc, nil
	}

	if err := json.Unmarshal(raw, doc); err != nil {
		return nil, err
	}

	return doc, nil
}

func (p *PersonEnrichment) SkillList() []string {
	if p == nil || len(p.Skills) == 0 {
		return []string{}
	}
	skills := make([]string, len(p.Skills))
	copy(skills, p.Skills)
	return skills
}

func (p *PersonEnrichment) WorkEmail() string {
	if p == nil || p.Data == nil {
		return ""
	}
	return deref(p.Data.WorkEmail)
}

func (p *PersonEnrichment) MobilePhone() string {
	if p == nil || p.Data == nil {
		return ""
	}
	return deref(p.Data.MobilePhone)
}

func (p *PersonEnrichment) JobTitle() string {
	if p == nil || p.Data == nil {
		return ""
	}
	return deref(p.Data.JobTitle)
}

// Address junta endereço e CEP quando existirem
func (p *PersonEnrichment) Address() string {
	if p == nil || p.Data == nil {
		return ""
	}
	parts := make([]string, 0, 2)
	if street := deref(p.Data.LocationStreetAddress); street != "" {
		parts = append(parts, street)
	}
	if postal := deref(p.Data.LocationPostalCode); postal != "" {
		parts = append(parts, postal)
	}
	return strings.Join(parts, ", ")
}

func (p *PersonEnrichment) SocialLinks() map[string]string {
	if p == nil {
		return map[string]string{}
	}
	return (&CompanyEnrichment{Socials: p.Socials}).SocialLinks()
}
