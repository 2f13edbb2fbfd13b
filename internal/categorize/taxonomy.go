package categorize

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Category binds a category name to its ordered list of case-insensitive
// match patterns (regular expressions).
type Category struct {
	Name     string   `yaml:"name"`
	Patterns []string `yaml:"patterns"`
}

// Taxonomy is the ordered category list. Declaration order is the tie-break
// rule: the first category with any matching pattern wins, so re-ordering
// changes outcomes for descriptions that match more than one category.
type Taxonomy []Category

// taxonomyFile is the on-disk YAML shape.
type taxonomyFile struct {
	Categories Taxonomy `yaml:"categories"`
}

// Load reads a taxonomy from a YAML file.
func Load(path string) (Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading taxonomy: %w", err)
	}
	var f taxonomyFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing taxonomy: %w", err)
	}
	return f.Categories, nil
}

// Save writes a taxonomy to a YAML file.
func Save(path string, tax Taxonomy) error {
	data, err := yaml.Marshal(taxonomyFile{Categories: tax})
	if err != nil {
		return fmt.Errorf("marshaling taxonomy: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing taxonomy: %w", err)
	}
	return nil
}

// Default returns the built-in taxonomy.
func Default() Taxonomy {
	return Taxonomy{
		{Name: "Dining", Patterns: []string{
			"restaurant", "dining", "café", "cafe", "coffee", "bakery",
			"starbucks", "dunkin", "mcdonald", "burger", "pizza", "taco",
			"chipotle", "wendy", "subway", "grubhub", "doordash", "ubereats",
			"deli", "bar & grill", "bistro", "steakhouse", "sushi",
		}},
		{Name: "Groceries", Patterns: []string{
			"grocery", "market", "supermarket", "food market", "whole foods",
			"kroger", "safeway", "trader joe", "aldi", "walmart", "target",
			"costco", "sam's club", "publix", "wegmans", "instacart",
		}},
		{Name: "Gas & Automotive", Patterns: []string{
			"gas", "fuel", "shell", "exxon", "mobil", "chevron", "bp",
			"auto parts", "autozone", "jiffy lube", "meineke", "valvoline",
			"car wash", "parking", "garage", "toll",
		}},
		{Name: "Travel", Patterns: []string{
			"airline", "flight", "delta", "united", "american air", "southwest",
			"jetblue", "airbnb", "hotel", "motel", "inn", "resort", "marriott",
			"hilton", "hyatt", "expedia", "travelocity", "booking.com", "uber",
			"lyft", "taxi", "car rental", "hertz", "avis", "enterprise",
		}},
		{Name: "Entertainment", Patterns: []string{
			"movie", "cinema", "theater", "theatre", "netflix", "hulu",
			"disney+", "spotify", "apple music", "concert", "ticketmaster",
			"amazon prime", "hbo", "youtube", "game", "playstation", "xbox",
			"theme park", "museum", "zoo", "aquarium",
		}},
		{Name: "Shopping", Patterns: []string{
			"amazon", "walmart", "target", "best buy", "macy", "nordstrom",
			"clothing", "apparel", "shoe", "jewelry", "accessory", "cosmetic",
			"sephora", "ulta", "mall", "department store", "nike", "adidas",
			"apple store", "microsoft", "home depot", "lowe", "ikea", "furniture",
		}},
		{Name: "Health & Medical", Patterns: []string{
			"pharmacy", "drug store", "cvs", "walgreens", "rite aid", "doctor",
			"hospital", "clinic", "medical", "dental", "healthcare", "insurance",
			"vision", "optometrist", "chiropractor", "therapy",
		}},
		{Name: "Utilities & Bills", Patterns: []string{
			"electric", "water", "gas bill", "utility", "phone", "mobile",
			"internet", "cable", "tv", "telecom", "at&t", "verizon", "comcast",
			"xfinity", "spectrum", "bill pay", "utilities",
		}},
		{Name: "Subscriptions & Memberships", Patterns: []string{
			"subscription", "membership", "monthly", "annual fee", "gym",
			"fitness", "magazine", "newspaper", "software", "service fee",
			"recurring", "monthly service",
		}},
		{Name: "Education", Patterns: []string{
			"tuition", "school", "university", "college", "campus", "education",
			"book store", "textbook", "course", "library", "student",
		}},
		{Name: "Income & Transfers", Patterns: []string{
			"deposit", "transfer", "payment", "payroll", "direct deposit",
			"venmo", "paypal", "zelle", "cash app", "refund", "reimbursement",
		}},
	}
}
