package quiz

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed books.yaml
var booksYAML []byte

// Catalog is the full set of books and questions known to the app.
type Catalog struct {
	Books []Book `yaml:"books"`
}

var (
	catalogOnce sync.Once
	catalog     *Catalog
	catalogErr  error
)

// LoadCatalog parses and validates the embedded catalog. The result is
// cached; subsequent calls return the same value.
func LoadCatalog() (*Catalog, error) {
	catalogOnce.Do(func() {
		var c Catalog
		if err := yaml.Unmarshal(booksYAML, &c); err != nil {
			catalogErr = fmt.Errorf("parse catalog: %w", err)
			return
		}
		if err := c.validate(); err != nil {
			catalogErr = fmt.Errorf("validate catalog: %w", err)
			return
		}
		catalog = &c
	})
	return catalog, catalogErr
}

// BookByID returns the book with the given ID, or nil.
func (c *Catalog) BookByID(id string) *Book {
	for i := range c.Books {
		if c.Books[i].ID == id {
			return &c.Books[i]
		}
	}
	return nil
}

func (c *Catalog) validate() error {
	if len(c.Books) == 0 {
		return fmt.Errorf("no books defined")
	}

	seen := make(map[string]bool)
	for _, b := range c.Books {
		if b.ID == "" || b.Title == "" {
			return fmt.Errorf("book %q: id and title are required", b.ID)
		}
		if len(b.Questions) == 0 {
			return fmt.Errorf("book %q: no questions", b.ID)
		}
		for i, q := range b.Questions {
			if q.ID == "" {
				return fmt.Errorf("book %q: question %d has no id", b.ID, i+1)
			}
			if seen[q.ID] {
				return fmt.Errorf("duplicate question id %q", q.ID)
			}
			seen[q.ID] = true

			if q.Number != i+1 {
				return fmt.Errorf("question %q: number %d out of order (want %d)", q.ID, q.Number, i+1)
			}
			if q.Prompt == "" || q.Endpoint == "" {
				return fmt.Errorf("question %q: prompt and endpoint are required", q.ID)
			}
			switch q.Kind {
			case AnswerFreeText:
				if len(q.Choices) > 0 {
					return fmt.Errorf("question %q: free_text questions take no choices", q.ID)
				}
			case AnswerChoice:
				if len(q.Choices) < 2 {
					return fmt.Errorf("question %q: choice questions need at least 2 choices", q.ID)
				}
			default:
				return fmt.Errorf("question %q: unknown answer kind %q", q.ID, q.Kind)
			}
		}
	}
	return nil
}
