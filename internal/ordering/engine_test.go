package ordering

import (
	"testing"

	"github.com/tesseralabs/tessera/internal/models"
)

func testDoc() *models.Document {
	return &models.Document{
		Version: models.SchemaVersion,
		Cards: []models.Card{
			{ID: "A", Title: "Alpha", Color: "blue-500", Order: 0, Links: []models.Link{
				{ID: "p", Title: "P", URL: "https://p", Icon: "link", Color: "blue-500", Order: 0},
				{ID: "q", Title: "Q", URL: "https://q", Icon: "link", Color: "blue-500", Order: 1},
				{ID: "r", Title: "R", URL: "https://r", Icon: "link", Color: "blue-500", Order: 2},
			}},
			{ID: "B", Title: "Beta", Color: "red-500", Order: 1, Links: []models.Link{}},
			{ID: "C", Title: "Gamma", Color: "green-500", Order: 2, Links: []models.Link{
				{ID: "s", Title: "S", URL: "https://s", Icon: "link", Color: "blue-500", Order: 0},
			}},
		},
	}
}

// checkDense fails unless every sibling set carries order 0..n-1 in slice order.
func checkDense(t *testing.T, doc *models.Document) {
	t.Helper()
	for i, c := range doc.Cards {
		if c.Order != i {
			t.Errorf("card %s order = %d, want %d", c.ID, c.Order, i)
		}
		for j, l := range c.Links {
			if l.Order != j {
				t.Errorf("card %s link %s order = %d, want %d", c.ID, l.ID, l.Order, j)
			}
		}
	}
}

func cardOrder(t *testing.T, doc *models.Document, id string) int {
	t.Helper()
	c := doc.CardByID(id)
	if c == nil {
		t.Fatalf("card %s missing", id)
	}
	return c.Order
}

func TestReorderCards(t *testing.T) {
	doc := testDoc()
	if !ReorderCards(doc, []string{"C", "A", "B"}) {
		t.Fatal("ReorderCards returned false")
	}
	if got := cardOrder(t, doc, "C"); got != 0 {
		t.Errorf("C.order = %d, want 0", got)
	}
	if got := cardOrder(t, doc, "A"); got != 1 {
		t.Errorf("A.order = %d, want 1", got)
	}
	if got := cardOrder(t, doc, "B"); got != 2 {
		t.Errorf("B.order = %d, want 2", got)
	}
	checkDense(t, doc)
}

func TestReorderCardsIncompleteSequenceKeepsStragglers(t *testing.T) {
	doc := testDoc()
	if !ReorderCards(doc, []string{"C"}) {
		t.Fatal("ReorderCards returned false")
	}
	if len(doc.Cards) != 3 {
		t.Fatalf("card count = %d, want 3", len(doc.Cards))
	}
	// C first, then A and B in prior relative order.
	want := []string{"C", "A", "B"}
	for i, id := range want {
		if doc.Cards[i].ID != id {
			t.Errorf("cards[%d] = %s, want %s", i, doc.Cards[i].ID, id)
		}
	}
	checkDense(t, doc)
}

func TestReorderCardsUnknownIDsOnly(t *testing.T) {
	doc := testDoc()
	if ReorderCards(doc, []string{"nope", "nah"}) {
		t.Fatal("ReorderCards with no known ids should return false")
	}
	checkDense(t, doc)
}

func TestReorderCardsIgnoresDuplicates(t *testing.T) {
	doc := testDoc()
	if !ReorderCards(doc, []string{"B", "B", "A", "C"}) {
		t.Fatal("ReorderCards returned false")
	}
	if len(doc.Cards) != 3 {
		t.Fatalf("card count = %d, want 3", len(doc.Cards))
	}
	if doc.Cards[0].ID != "B" {
		t.Errorf("cards[0] = %s, want B", doc.Cards[0].ID)
	}
	checkDense(t, doc)
}

func TestReorderLinks(t *testing.T) {
	doc := testDoc()
	if !ReorderLinks(doc, "A", []string{"r", "p", "q"}) {
		t.Fatal("ReorderLinks returned false")
	}
	card := doc.CardByID("A")
	want := []string{"r", "p", "q"}
	for i, id := range want {
		if card.Links[i].ID != id {
			t.Errorf("links[%d] = %s, want %s", i, card.Links[i].ID, id)
		}
	}
	checkDense(t, doc)
}

func TestReorderLinksMissingCard(t *testing.T) {
	doc := testDoc()
	if ReorderLinks(doc, "Z", []string{"p"}) {
		t.Fatal("ReorderLinks on missing card should return false")
	}
}

func TestMoveLinkToEmptyCard(t *testing.T) {
	doc := testDoc()
	if !MoveLink(doc, "q", "A", "B", 0) {
		t.Fatal("MoveLink returned false")
	}
	src := doc.CardByID("A")
	if len(src.Links) != 2 || src.Links[0].ID != "p" || src.Links[1].ID != "r" {
		t.Errorf("source links = %+v, want [p r]", src.Links)
	}
	dst := doc.CardByID("B")
	if len(dst.Links) != 1 || dst.Links[0].ID != "q" {
		t.Errorf("dest links = %+v, want [q]", dst.Links)
	}
	checkDense(t, doc)
}

func TestMoveLinkAppearsExactlyOnce(t *testing.T) {
	doc := testDoc()
	if !MoveLink(doc, "q", "A", "C", 1) {
		t.Fatal("MoveLink returned false")
	}
	count := 0
	for _, c := range doc.Cards {
		for _, l := range c.Links {
			if l.ID == "q" {
				count++
			}
		}
	}
	if count != 1 {
		t.Errorf("q appears %d times, want 1", count)
	}
	dst := doc.CardByID("C")
	if dst.Links[1].ID != "q" {
		t.Errorf("dest links[1] = %s, want q", dst.Links[1].ID)
	}
	checkDense(t, doc)
}

func TestMoveLinkClampsIndex(t *testing.T) {
	doc := testDoc()
	if !MoveLink(doc, "p", "A", "C", 99) {
		t.Fatal("MoveLink returned false")
	}
	dst := doc.CardByID("C")
	if dst.Links[len(dst.Links)-1].ID != "p" {
		t.Errorf("p should land at the end, got %+v", dst.Links)
	}

	doc = testDoc()
	if !MoveLink(doc, "p", "A", "C", -5) {
		t.Fatal("MoveLink returned false")
	}
	dst = doc.CardByID("C")
	if dst.Links[0].ID != "p" {
		t.Errorf("p should land at the front, got %+v", dst.Links)
	}
	checkDense(t, doc)
}

func TestMoveLinkRejectsSameCard(t *testing.T) {
	doc := testDoc()
	if MoveLink(doc, "q", "A", "A", 0) {
		t.Fatal("same-card move should return false")
	}
	checkDense(t, doc)
}

func TestMoveLinkMissingPieces(t *testing.T) {
	cases := []struct {
		name                 string
		linkID, from, target string
	}{
		{"missing link", "zz", "A", "B"},
		{"missing source", "q", "Z", "B"},
		{"missing dest", "q", "A", "Z"},
		{"link in other card", "s", "A", "B"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := testDoc()
			if MoveLink(doc, tc.linkID, tc.from, tc.target, 0) {
				t.Fatal("MoveLink should return false")
			}
			if len(doc.CardByID("A").Links) != 3 {
				t.Error("source card mutated on failed move")
			}
			checkDense(t, doc)
		})
	}
}

func TestAddCardAppends(t *testing.T) {
	doc := testDoc()
	card := AddCard(doc, CardTemplate{Title: "Media", Color: "rose-500"})
	if card.Order != 3 {
		t.Errorf("order = %d, want 3", card.Order)
	}
	if card.ID == "" {
		t.Error("id not assigned")
	}
	checkDense(t, doc)
}

func TestAddCardDefaults(t *testing.T) {
	doc := &models.Document{Version: models.SchemaVersion}
	card := AddCard(doc, CardTemplate{Color: "not-a-color"})
	if card.Title != "New Card" {
		t.Errorf("title = %q", card.Title)
	}
	if card.Color != models.DefaultColor {
		t.Errorf("color = %q", card.Color)
	}
	if card.Order != 0 {
		t.Errorf("order = %d, want 0", card.Order)
	}
}

func TestUpdateCardMerges(t *testing.T) {
	doc := testDoc()
	title := "Renamed"
	card := UpdateCard(doc, "B", CardPatch{Title: &title})
	if card == nil {
		t.Fatal("UpdateCard returned nil")
	}
	if card.Title != "Renamed" {
		t.Errorf("title = %q", card.Title)
	}
	if card.Color != "red-500" {
		t.Errorf("color changed unexpectedly: %q", card.Color)
	}
	if UpdateCard(doc, "Z", CardPatch{Title: &title}) != nil {
		t.Error("missing card should return nil")
	}
}

func TestDeleteCardRenumbers(t *testing.T) {
	doc := testDoc()
	if !DeleteCard(doc, "B") {
		t.Fatal("DeleteCard returned false")
	}
	if len(doc.Cards) != 2 {
		t.Fatalf("card count = %d", len(doc.Cards))
	}
	if cardOrder(t, doc, "C") != 1 {
		t.Error("C not renumbered after delete")
	}
	checkDense(t, doc)

	if DeleteCard(doc, "B") {
		t.Error("double delete should return false")
	}
}

func TestAddLinkAppends(t *testing.T) {
	doc := testDoc()
	link := AddLink(doc, "C", LinkTemplate{Title: "Maps", URL: "https://maps.google.com", Icon: "globe-alt", Color: "sky-500"})
	if link == nil {
		t.Fatal("AddLink returned nil")
	}
	if link.Order != 1 {
		t.Errorf("order = %d, want 1", link.Order)
	}
	if AddLink(doc, "Z", LinkTemplate{}) != nil {
		t.Error("missing card should return nil")
	}
	checkDense(t, doc)
}

func TestAddLinkDefaults(t *testing.T) {
	doc := testDoc()
	link := AddLink(doc, "B", LinkTemplate{Icon: "bogus", Color: "bogus"})
	if link.Title != "New Link" || link.URL != "https://example.com" {
		t.Errorf("defaults not applied: %+v", link)
	}
	if link.Icon != models.DefaultIcon || link.Color != models.DefaultColor {
		t.Errorf("icon/color defaults not applied: %+v", link)
	}
}

func TestDeleteLinkKeepsDensity(t *testing.T) {
	doc := testDoc()
	if !DeleteLink(doc, "A", "q") {
		t.Fatal("DeleteLink returned false")
	}
	card := doc.CardByID("A")
	if len(card.Links) != 2 || card.Links[0].ID != "p" || card.Links[1].ID != "r" {
		t.Errorf("links = %+v", card.Links)
	}
	checkDense(t, doc)
}

func TestDeleteLinkMissingIDLeavesOrderUntouched(t *testing.T) {
	doc := testDoc()
	if DeleteLink(doc, "A", "zz") {
		t.Fatal("DeleteLink on missing id should return false")
	}
	card := doc.CardByID("A")
	if len(card.Links) != 3 {
		t.Errorf("link count = %d, want 3", len(card.Links))
	}
	checkDense(t, doc)
}

func TestNormalizeRepairsGaps(t *testing.T) {
	doc := &models.Document{Cards: []models.Card{
		{ID: "x", Order: 7, Links: []models.Link{
			{ID: "a", Order: 5},
			{ID: "b", Order: 5},
			{ID: "c", Order: 1},
		}},
		{ID: "y", Order: 2},
	}}
	Normalize(doc)
	if doc.Cards[0].ID != "y" || doc.Cards[1].ID != "x" {
		t.Errorf("cards not sorted by order: %s, %s", doc.Cards[0].ID, doc.Cards[1].ID)
	}
	x := doc.CardByID("x")
	if x.Links[0].ID != "c" {
		t.Errorf("links[0] = %s, want c", x.Links[0].ID)
	}
	checkDense(t, doc)
}

// Density must hold through an arbitrary operation sequence, not just
// single steps.
func TestOperationSequencePreservesDensity(t *testing.T) {
	doc := testDoc()
	AddCard(doc, CardTemplate{Title: "D"})
	MoveLink(doc, "p", "A", "B", 0)
	ReorderCards(doc, []string{"B", "C", "A"})
	DeleteLink(doc, "A", "q")
	MoveLink(doc, "s", "C", "B", 1)
	DeleteCard(doc, "C")
	ReorderLinks(doc, "B", []string{"s", "p"})
	checkDense(t, doc)
}
