package mdpage_test

import (
	"context"
	"fmt"
	"log"
	"time"

	mdpage "github.com/alnah/go-mdpage"
)

func ExampleRenderer_Render() {
	r := mdpage.NewRenderer()

	page, err := r.Render(context.Background(), "## Getting Started\n\nSee ==this== first.")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(page.Headings[0].ID)
	fmt.Print(page.HTML)
	// Output:
	// getting-started
	// <h2 id="getting-started">Getting Started</h2>
	// <p>See <mark>this</mark> first.</p>
}

func ExampleRenderer_Render_frontMatter() {
	r := mdpage.NewRenderer(mdpage.WithNow(func() time.Time {
		return time.Date(2024, time.May, 7, 0, 0, 0, 0, time.UTC)
	}))

	doc := "---\ntitle: Guide\ndate: auto\n---\n# Guide\n"
	page, err := r.Render(context.Background(), doc)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(page.Meta.Title)
	fmt.Println(page.Meta.Date)
	// Output:
	// Guide
	// 2024-05-07
}
