package quiz

import "testing"

func TestLoadCatalog(t *testing.T) {
	cat, err := LoadCatalog()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	if len(cat.Books) != 2 {
		t.Fatalf("books = %d, want 2", len(cat.Books))
	}

	pr := cat.BookByID("peter-rabbit")
	if pr == nil {
		t.Fatal("peter-rabbit missing")
	}
	if pr.Author != "Beatrix Potter" {
		t.Errorf("author = %q", pr.Author)
	}
	if len(pr.Questions) != 14 {
		t.Errorf("peter-rabbit questions = %d, want 14", len(pr.Questions))
	}

	gl := cat.BookByID("goldilocks")
	if gl == nil {
		t.Fatal("goldilocks missing")
	}
	if len(gl.Questions) != 8 {
		t.Errorf("goldilocks questions = %d, want 8", len(gl.Questions))
	}
}

func TestCatalogChoiceQuestion(t *testing.T) {
	cat, err := LoadCatalog()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	gl := cat.BookByID("goldilocks")
	q := gl.QuestionAt(3)
	if q == nil {
		t.Fatal("question 3 missing")
	}
	if q.Kind != AnswerChoice {
		t.Fatalf("kind = %s, want choice", q.Kind)
	}
	if len(q.Choices) != 2 || q.Choices[0] != "Fiction" || q.Choices[1] != "Non-Fiction" {
		t.Errorf("choices = %v", q.Choices)
	}
}

func TestCatalogNextQuestion(t *testing.T) {
	cat, err := LoadCatalog()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	gl := cat.BookByID("goldilocks")

	first := gl.QuestionAt(1)
	next := gl.Next(first)
	if next == nil || next.Number != 2 {
		t.Errorf("next after 1 = %v", next)
	}

	last := gl.QuestionAt(len(gl.Questions))
	if got := gl.Next(last); got != nil {
		t.Errorf("last question must have no successor, got %v", got)
	}
}

func TestCatalogEndpointsAreDistinct(t *testing.T) {
	cat, err := LoadCatalog()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	seen := map[string]string{}
	for _, b := range cat.Books {
		for _, q := range b.Questions {
			if q.Endpoint == "" {
				t.Errorf("%s has no endpoint", q.ID)
				continue
			}
			if prev, dup := seen[q.Endpoint]; dup {
				t.Errorf("endpoint %s shared by %s and %s", q.Endpoint, prev, q.ID)
			}
			seen[q.Endpoint] = q.ID
		}
	}
}
