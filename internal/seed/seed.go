// internal/seed/seed.go

// Package seed loads the demo dataset: eight departments with nine postings,
// a randomized applicant pool per posting, and one HR account per department.
package seed

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"internship-allocator/internal/auth"
	"internship-allocator/internal/models"
	"internship-allocator/internal/store"
)

const applicantsPerPosting = 24

// Sectors maps department ids to display names.
var Sectors = map[string]string{
	"it_software":     "IT & Software",
	"banking_finance": "Banking & Finance",
	"fmcg":            "FMCG",
	"oil_gas":         "Oil & Gas",
	"manufacturing":   "Manufacturing",
	"healthcare":      "Healthcare",
	"retail":          "Retail",
	"hospitality":     "Hospitality",
}

var (
	qualifications   = []string{"B.Tech", "BE", "BSc", "M.Tech", "MBA", "BBA", "BCom", "BA", "MSc"}
	cities           = []string{"Bengaluru", "Hyderabad", "Mumbai", "Delhi", "Ahmedabad", "Pune", "Chennai", "Kolkata", "Goa", "Jaipur", "Lucknow"}
	socialCategories = []string{"General", "OBC", "SC", "ST", "EWS"}
	firstNames       = []string{
		"Aarav", "Isha", "Karan", "Priya", "Ravi", "Sneha", "Arjun", "Meera",
		"Vikram", "Ananya", "Rahul", "Neha", "Siddharth", "Pooja", "Manish", "Kavya",
		"Nikhil", "Sanya", "Amit", "Divya",
	}
	lastNames = []string{
		"Sharma", "Patel", "Reddy", "Gupta", "Nair", "Khan", "Mehta", "Iyer",
		"Das", "Chopra", "Jain", "Mishra", "Agarwal", "Joshi", "Rao", "Singh",
	}
	commonSkills = []string{
		"python", "excel", "communication", "sql", "css", "javascript",
		"statistics", "research", "presentation", "safety", "operations",
	}
)

// HRUsers returns the seed HR account per department.
func HRUsers() []models.HRUser {
	return []models.HRUser{
		{Email: "it.hr@example.com", Password: "it12345", Name: "IT HR Manager", DepartmentID: "it_software"},
		{Email: "bank.hr@example.com", Password: "bank12345", Name: "Banking HR Manager", DepartmentID: "banking_finance"},
		{Email: "fmcg.hr@example.com", Password: "fmcg12345", Name: "FMCG HR Manager", DepartmentID: "fmcg"},
		{Email: "oil.hr@example.com", Password: "oil12345", Name: "Oil & Gas HR Manager", DepartmentID: "oil_gas"},
		{Email: "mfg.hr@example.com", Password: "mfg12345", Name: "Manufacturing HR Manager", DepartmentID: "manufacturing"},
		{Email: "health.hr@example.com", Password: "health12345", Name: "Healthcare HR Manager", DepartmentID: "healthcare"},
		{Email: "retail.hr@example.com", Password: "retail12345", Name: "Retail HR Manager", DepartmentID: "retail"},
		{Email: "hospitality.hr@example.com", Password: "hosp12345", Name: "Hospitality HR Manager", DepartmentID: "hospitality"},
	}
}

// Postings returns the nine demo postings with zeroed counters.
func Postings() []*models.Posting {
	return []*models.Posting{
		{ID: "p1", DepartmentID: "it_software", Title: "React Internship", Description: "Build modern web UIs with React, work on component libraries, accessibility, performance optimizations, and collaborate with designers to deliver pixel-perfect experiences.", Stipend: "10k", Positions: 3, SkillsRequired: []string{"react", "javascript", "css"}, LocationPreference: "Bengaluru", Sector: Sectors["it_software"]},
		{ID: "p2", DepartmentID: "it_software", Title: "Backend Internship", Description: "Design and implement REST APIs, integrate databases, add tests and observability, and work on scalability and security best practices.", Stipend: "12k", Positions: 2, SkillsRequired: []string{"python", "fastapi", "sql"}, LocationPreference: "Hyderabad", Sector: Sectors["it_software"]},
		{ID: "p3", DepartmentID: "banking_finance", Title: "Finance Analyst Intern", Description: "Analyze financial data, build dashboards, support forecasting and risk analysis, and assist with compliance reporting.", Stipend: "15k", Positions: 4, SkillsRequired: []string{"excel", "finance", "statistics"}, LocationPreference: "Mumbai", Sector: Sectors["banking_finance"]},
		{ID: "p4", DepartmentID: "fmcg", Title: "Marketing Intern", Description: "Support brand campaigns, conduct consumer research, work on GTM and content for FMCG products across channels.", Stipend: "8k", Positions: 5, SkillsRequired: []string{"marketing", "communication", "research"}, LocationPreference: "Delhi", Sector: Sectors["fmcg"]},
		{ID: "p5", DepartmentID: "oil_gas", Title: "Petroleum Intern", Description: "Assist with field data collection, safety procedures documentation, and reporting for upstream operations.", Stipend: "20k", Positions: 2, SkillsRequired: []string{"petroleum", "safety", "reporting"}, LocationPreference: "Ahmedabad", Sector: Sectors["oil_gas"]},
		{ID: "p6", DepartmentID: "manufacturing", Title: "Production Intern", Description: "Work on production line improvements, lean audits, and maintenance planning in a plant environment.", Stipend: "9k", Positions: 3, SkillsRequired: []string{"lean", "excel", "maintenance"}, LocationPreference: "Pune", Sector: Sectors["manufacturing"]},
		{ID: "p7", DepartmentID: "healthcare", Title: "Medical Research Intern", Description: "Support clinical study documentation, literature reviews, and basic data analysis for healthcare projects.", Stipend: "12k", Positions: 2, SkillsRequired: []string{"biology", "research", "documentation"}, LocationPreference: "Chennai", Sector: Sectors["healthcare"]},
		{ID: "p8", DepartmentID: "retail", Title: "Retail Analytics Intern", Description: "Analyze POS data, build store performance dashboards, and provide insights for merchandising.", Stipend: "7k", Positions: 3, SkillsRequired: []string{"python", "excel", "visualization"}, LocationPreference: "Kolkata", Sector: Sectors["retail"]},
		{ID: "p9", DepartmentID: "hospitality", Title: "Hotel Management Intern", Description: "Support front office, guest relations, and operations excellence in hospitality settings.", Stipend: "10k", Positions: 4, SkillsRequired: []string{"operations", "communication", "customer service"}, LocationPreference: "Goa", Sector: Sectors["hospitality"]},
	}
}

// ApplicantsFor generates the randomized applicant pool for one posting.
func ApplicantsFor(rng *rand.Rand, p *models.Posting, count int) []*models.Applicant {
	pool := dedupe(append(append([]string{}, p.SkillsRequired...), commonSkills...))

	out := make([]*models.Applicant, 0, count)
	for i := 0; i < count; i++ {
		first := firstNames[rng.Intn(len(firstNames))]
		last := lastNames[rng.Intn(len(lastNames))]

		interests := map[string]bool{p.Sector: true}
		for _, idx := range rng.Perm(len(Sectors))[:2] {
			interests[sectorByIndex(idx)] = true
		}

		out = append(out, &models.Applicant{
			ID:                fmt.Sprintf("%s-%d", p.ID, i+1),
			Name:              first + " " + last,
			Email:             fmt.Sprintf("%s.%s%d@example.com", strings.ToLower(first), strings.ToLower(last), i+1),
			Skills:            sample(rng, pool, 4),
			Qualifications:    qualifications[rng.Intn(len(qualifications))],
			Location:          cities[rng.Intn(len(cities))],
			SectorInterests:   keys(interests),
			Rural:             rng.Intn(2) == 0,
			SocialCategory:    socialCategories[rng.Intn(len(socialCategories))],
			PastParticipation: pastParticipation(rng),
			Status:            models.StatusApplied,
		})
	}
	return out
}

// Load populates every store with the demo dataset.
func Load(rng *rand.Rand, postings *store.PostingRegistry, applicants *store.ApplicantStore, directory *auth.UserDirectory) error {
	for dept := range Sectors {
		postings.EnsureDepartment(dept)
	}

	for _, p := range Postings() {
		pool := ApplicantsFor(rng, p, applicantsPerPosting)
		p.Applied = len(pool)
		if err := postings.Add(p); err != nil {
			return err
		}
		applicants.Seed(p.ID, pool)
	}

	for _, u := range HRUsers() {
		if err := directory.Add(u); err != nil {
			return err
		}
	}
	return nil
}

// one in four applicants has participated before
func pastParticipation(rng *rand.Rand) int {
	if rng.Intn(4) == 0 {
		return 1
	}
	return 0
}

func sample(rng *rand.Rand, pool []string, k int) []string {
	if k > len(pool) {
		k = len(pool)
	}
	out := make([]string, 0, k)
	for _, idx := range rng.Perm(len(pool))[:k] {
		out = append(out, pool[idx])
	}
	return out
}

func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

func keys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

var sectorNames = func() []string {
	out := make([]string, 0, len(Sectors))
	for _, name := range Sectors {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}()

func sectorByIndex(i int) string {
	return sectorNames[i]
}
