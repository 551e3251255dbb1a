package controllers

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"

	"smart-restaurant/models"
	"smart-restaurant/store"

	"github.com/gin-gonic/gin"
)

// TasteProfile is an in-memory frequency counter over item and category
// names. It resets on restart; it is a recommendation stub, not a model.
type TasteProfile struct {
	mu     sync.Mutex
	counts map[string]int
}

func NewTasteProfile() *TasteProfile {
	return &TasteProfile{counts: make(map[string]int)}
}

func (p *TasteProfile) Learn(keys ...string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, k := range keys {
		if k != "" {
			p.counts[strings.ToLower(k)]++
		}
	}
}

func (p *TasteProfile) Count(key string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.counts[strings.ToLower(key)]
}

func (p *TasteProfile) HasData() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.counts) > 0
}

// Recommend returns up to three menu items: ranked by what the profile
// has seen when it has data, the first listings otherwise.
func Recommend(menu store.MenuStore, profile *TasteProfile) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
		defer cancel()

		items, err := menu.List(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Recommendation failed"})
			return
		}

		if wanted := c.Query("type"); wanted != "" {
			filtered := make([]models.MenuItem, 0, len(items))
			for _, item := range items {
				if strings.EqualFold(item.Category, wanted) {
					filtered = append(filtered, item)
				}
			}
			items = filtered
		}

		personalized := profile.HasData()
		if personalized {
			sort.SliceStable(items, func(i, j int) bool {
				si := profile.Count(items[i].Name) + profile.Count(items[i].Category)
				sj := profile.Count(items[j].Name) + profile.Count(items[j].Category)
				return si > sj
			})
		}
		if len(items) > 3 {
			items = items[:3]
		}

		out := make([]gin.H, 0, len(items))
		for _, item := range items {
			reason := "Chef's pick"
			if personalized && profile.Count(item.Name)+profile.Count(item.Category) > 0 {
				reason = "Based on what you've been enjoying"
			}
			out = append(out, gin.H{"name": item.Name, "price": item.Price, "reason": reason})
		}
		c.JSON(http.StatusOK, out)
	}
}

type learnRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

func Learn(profile *TasteProfile) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req learnRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
			return
		}
		profile.Learn(req.Name, req.Category)
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

type chatRequest struct {
	Message string `json:"message"`
}

// Chat is a scripted keyword responder. Unmatched messages get the echo
// reply so the assistant always answers something.
func Chat() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req chatRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Message == "" {
			c.JSON(http.StatusOK, gin.H{"reply": "Hi, how can I help you today?"})
			return
		}

		msg := strings.ToLower(req.Message)
		var reply string
		switch {
		case strings.Contains(msg, "menu"):
			reply = "You can browse our full menu on the menu page. Anything in particular you are craving?"
		case strings.Contains(msg, "book") || strings.Contains(msg, "reserv") || strings.Contains(msg, "table"):
			reply = "You can book a table from the reservations page. Tell me a date and time if you need help."
		case strings.Contains(msg, "open") || strings.Contains(msg, "hour"):
			reply = "We are open daily from 11:00 to 22:00."
		case strings.Contains(msg, "order"):
			reply = "Add items to your cart and check out to place an order for pickup or delivery."
		default:
			reply = fmt.Sprintf("You said: %q. Our staff will assist you shortly.", req.Message)
		}
		c.JSON(http.StatusOK, gin.H{"reply": reply})
	}
}
