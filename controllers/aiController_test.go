package controllers_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	controller "smart-restaurant/controllers"
	"smart-restaurant/models"
	"smart-restaurant/routes"

	"github.com/gin-gonic/gin"
)

func newAIRouter(menu *stubMenuStore, profile *controller.TasteProfile) *gin.Engine {
	r := gin.New()
	routes.AIRoutes(r, menu, profile)
	return r
}

func seedMenu(t *testing.T, menu *stubMenuStore, names ...string) {
	t.Helper()
	for i, name := range names {
		_, err := menu.Insert(context.Background(), &models.MenuItem{
			Name:     name,
			Category: "Main",
			Price:    float64(5 + i),
		})
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
}

func TestChatKeywordAndEcho(t *testing.T) {
	setAuthEnv(t)
	r := newAIRouter(newStubMenuStore(), controller.NewTasteProfile())
	_, token := customerToken(t)

	var resp struct {
		Reply string `json:"reply"`
	}

	w := doJSON(r, http.MethodPost, "/api/ai/chat", token, `{"message":"can I book a table?"}`)
	decodeBody(t, w, &resp)
	if !strings.Contains(resp.Reply, "reservation") {
		t.Fatalf("booking reply=%q", resp.Reply)
	}

	w = doJSON(r, http.MethodPost, "/api/ai/chat", token, `{"message":"abracadabra"}`)
	decodeBody(t, w, &resp)
	if !strings.Contains(resp.Reply, "abracadabra") || !strings.Contains(resp.Reply, "Our staff will assist you shortly.") {
		t.Fatalf("echo reply=%q", resp.Reply)
	}

	w = doJSON(r, http.MethodPost, "/api/ai/chat", token, `{}`)
	decodeBody(t, w, &resp)
	if resp.Reply != "Hi, how can I help you today?" {
		t.Fatalf("empty-message reply=%q", resp.Reply)
	}
}

func TestRecommendDefaultsToFirstItems(t *testing.T) {
	setAuthEnv(t)
	menu := newStubMenuStore()
	seedMenu(t, menu, "Soup", "Pasta", "Steak", "Cake", "Tea")
	r := newAIRouter(menu, controller.NewTasteProfile())
	_, token := customerToken(t)

	w := doJSON(r, http.MethodGet, "/api/ai/recommend", token, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var recs []struct {
		Name   string  `json:"name"`
		Price  float64 `json:"price"`
		Reason string  `json:"reason"`
	}
	decodeBody(t, w, &recs)
	if len(recs) != 3 {
		t.Fatalf("got %d recommendations, want 3", len(recs))
	}
	for _, rec := range recs {
		if rec.Reason == "" || rec.Name == "" {
			t.Fatalf("rec=%+v missing fields", rec)
		}
	}
}

func TestRecommendRanksLearnedItems(t *testing.T) {
	setAuthEnv(t)
	menu := newStubMenuStore()
	seedMenu(t, menu, "Soup", "Pasta", "Steak", "Cake")
	profile := controller.NewTasteProfile()
	r := newAIRouter(menu, profile)
	_, token := customerToken(t)

	for i := 0; i < 3; i++ {
		w := doJSON(r, http.MethodPost, "/api/ai/learn", token, `{"name":"Cake"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("learn: status=%d", w.Code)
		}
	}

	w := doJSON(r, http.MethodGet, "/api/ai/recommend", token, "")
	var recs []struct {
		Name   string `json:"name"`
		Reason string `json:"reason"`
	}
	decodeBody(t, w, &recs)
	if len(recs) == 0 || recs[0].Name != "Cake" {
		t.Fatalf("recs=%+v, want Cake first", recs)
	}
	if recs[0].Reason == "Chef's pick" {
		t.Fatalf("learned item still has default reason")
	}
}

func TestRecommendFiltersByType(t *testing.T) {
	setAuthEnv(t)
	menu := newStubMenuStore()
	for _, seed := range []models.MenuItem{
		{Name: "Soup", Category: "Starter", Price: 5.5},
		{Name: "Pasta", Category: "Main", Price: 12},
		{Name: "Cake", Category: "Dessert", Price: 6},
	} {
		item := seed
		if _, err := menu.Insert(context.Background(), &item); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	r := newAIRouter(menu, controller.NewTasteProfile())
	_, token := customerToken(t)

	w := doJSON(r, http.MethodGet, "/api/ai/recommend?type=dessert", token, "")
	var recs []struct {
		Name string `json:"name"`
	}
	decodeBody(t, w, &recs)
	if len(recs) != 1 || recs[0].Name != "Cake" {
		t.Fatalf("recs=%+v, want only Cake", recs)
	}
}

func TestAIRequiresAuth(t *testing.T) {
	setAuthEnv(t)
	r := newAIRouter(newStubMenuStore(), controller.NewTasteProfile())

	if w := doJSON(r, http.MethodGet, "/api/ai/recommend", "", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("recommend: status=%d, want 401", w.Code)
	}
	if w := doJSON(r, http.MethodPost, "/api/ai/chat", "", `{"message":"hi"}`); w.Code != http.StatusUnauthorized {
		t.Fatalf("chat: status=%d, want 401", w.Code)
	}
}
