package view

import (
	"testing"

	"gennova/internal/domain"
)

func TestArticleViewSeedsDefaultChecks(t *testing.T) {
	article := domain.Article{ID: "a1", Title: "Nurturing your child's musical ear"}
	sections := []domain.Section{
		{ID: "s1", Kind: domain.SectionParagraph, Text: "intro", Position: 0},
		{ID: "s2", Kind: domain.SectionHeading, Text: "The Science of Rhythm", Position: 1},
		{ID: "s3", Kind: domain.SectionList, Items: []string{"scales", "rhythm games"}, Position: 2},
	}
	activities := []domain.Activity{
		{ID: "1", Text: "Listen to classical music (15m)", DefaultChecked: true},
		{ID: "2", Text: "Clap to a basic 4/4 beat"},
	}

	v := NewArticleView(article, sections, activities)
	if len(v.Sections) != 3 {
		t.Fatalf("expected ordered sections preserved, got %d", len(v.Sections))
	}
	if !v.Activities[0].Checked || v.Activities[1].Checked {
		t.Fatalf("default checks must seed the view: %+v", v.Activities)
	}
}

func TestArticleViewToggleActivity(t *testing.T) {
	v := NewArticleView(domain.Article{ID: "a1"}, nil, []domain.Activity{
		{ID: "1", Text: "x", DefaultChecked: true},
		{ID: "2", Text: "y"},
	})

	v.ToggleActivity("2")
	if !v.Activities[1].Checked {
		t.Fatalf("toggle must flip the activity")
	}
	v.ToggleActivity("2")
	if v.Activities[1].Checked {
		t.Fatalf("second toggle must flip it back")
	}
	v.ToggleActivity("missing")
	if !v.Activities[0].Checked || v.Activities[1].Checked {
		t.Fatalf("unknown ids must be ignored")
	}
}
