package web

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mrigtrishna/core/internal/models"
	"github.com/mrigtrishna/core/internal/modules/content/journal"
	"github.com/mrigtrishna/core/internal/modules/content/portfolio"
	"github.com/mrigtrishna/core/internal/modules/content/product"
	"github.com/mrigtrishna/core/internal/modules/content/settings"
	"github.com/mrigtrishna/core/internal/modules/content/skill"
	"github.com/mrigtrishna/core/internal/pkg/pagination"
	"go.uber.org/zap"
)

const journalPageSize = 10

// Handler renders the public pages and the admin console. Every page load
// re-reads the stores; nothing is cached.
type Handler struct {
	portfolios portfolio.Store
	products   product.Store
	journal    journal.Store
	skills     skill.Store
	settings   settings.Store
	logger     *zap.Logger
}

func NewHandler(
	portfolios portfolio.Store,
	products product.Store,
	journalStore journal.Store,
	skills skill.Store,
	settingsStore settings.Store,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		portfolios: portfolios,
		products:   products,
		journal:    journalStore,
		skills:     skills,
		settings:   settingsStore,
		logger:     logger,
	}
}

// FuncMap exposes template helpers; install before LoadHTMLGlob.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"icon": iconSVG,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine, requireLogin gin.HandlerFunc) {
	r.GET("/", h.home)
	r.GET("/portfolio", h.portfolioPage)
	r.GET("/shop", h.shopPage)
	r.GET("/journal", h.journalPage)
	r.GET("/about", h.aboutPage)
	r.GET("/contact", h.contactPage)
	r.GET("/login", h.loginPage)

	admin := r.Group("/admin", requireLogin)
	admin.GET("", h.adminHome)
	admin.GET("/portfolio", h.adminPortfolio)
	admin.GET("/shop", h.adminShop)
	admin.GET("/journal", h.adminJournal)
	admin.GET("/skills", h.adminSkills)
	admin.GET("/settings", h.adminSettings)
}

// socialView is a socials entry in fixed platform order, for stable
// rendering of the map.
type socialView struct {
	Platform string
	URL      string
	Show     bool
}

func orderedSocials(doc models.SettingsModel) []socialView {
	out := make([]socialView, 0, len(models.SocialPlatforms))
	for _, platform := range models.SocialPlatforms {
		link := doc.Socials[platform]
		out = append(out, socialView{Platform: platform, URL: link.URL, Show: link.Show})
	}
	return out
}

func (h *Handler) fail(c *gin.Context, page string, err error) {
	h.logger.Error("page render failed", zap.String("page", page), zap.Error(err))
	c.String(http.StatusInternalServerError, "something went wrong")
}

// GET / renders the hero plus the freshest work and writing.
func (h *Handler) home(c *gin.Context) {
	ctx := c.Request.Context()

	site, err := h.settings.Get(ctx)
	if err != nil {
		h.fail(c, "home", err)
		return
	}
	items, err := h.portfolios.List(ctx)
	if err != nil {
		h.fail(c, "home", err)
		return
	}
	entries, err := h.journal.List(ctx)
	if err != nil {
		h.fail(c, "home", err)
		return
	}

	c.HTML(http.StatusOK, "home.html", gin.H{
		"Site":      site,
		"Portfolio": firstN(items, 6),
		"Journal":   firstN(entries, 3),
		"Socials":   orderedSocials(site),
	})
}

// GET /portfolio
func (h *Handler) portfolioPage(c *gin.Context) {
	items, err := h.portfolios.List(c.Request.Context())
	if err != nil {
		h.fail(c, "portfolio", err)
		return
	}
	c.HTML(http.StatusOK, "portfolio.html", gin.H{
		"Items":      items,
		"Categories": portfolioCategories(items),
	})
}

// GET /shop
func (h *Handler) shopPage(c *gin.Context) {
	items, err := h.products.List(c.Request.Context())
	if err != nil {
		h.fail(c, "shop", err)
		return
	}
	c.HTML(http.StatusOK, "shop.html", gin.H{
		"Products":   items,
		"Categories": productCategories(items),
	})
}

// GET /journal?page=N: the full list is fetched once and sliced into
// fixed-size pages.
func (h *Handler) journalPage(c *gin.Context) {
	entries, err := h.journal.List(c.Request.Context())
	if err != nil {
		h.fail(c, "journal", err)
		return
	}

	q := pagination.FromContext(c)
	q.Size = journalPageSize
	page, meta := pagination.Slice(entries, q)

	c.HTML(http.StatusOK, "journal.html", gin.H{
		"Entries": page,
		"Meta":    meta,
		"Pages":   pageNumbers(meta.TotalPage),
	})
}

// GET /about
func (h *Handler) aboutPage(c *gin.Context) {
	ctx := c.Request.Context()

	site, err := h.settings.Get(ctx)
	if err != nil {
		h.fail(c, "about", err)
		return
	}
	skills, err := h.skills.List(ctx)
	if err != nil {
		h.fail(c, "about", err)
		return
	}

	c.HTML(http.StatusOK, "about.html", gin.H{
		"Site":    site,
		"Skills":  skills,
		"Socials": orderedSocials(site),
	})
}

// GET /contact
func (h *Handler) contactPage(c *gin.Context) {
	site, err := h.settings.Get(c.Request.Context())
	if err != nil {
		h.fail(c, "contact", err)
		return
	}
	c.HTML(http.StatusOK, "contact.html", gin.H{
		"Site":    site,
		"Socials": orderedSocials(site),
	})
}

// GET /login
func (h *Handler) loginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

// GET /admin
func (h *Handler) adminHome(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_home.html", gin.H{})
}

// GET /admin/portfolio
func (h *Handler) adminPortfolio(c *gin.Context) {
	items, err := h.portfolios.List(c.Request.Context())
	if err != nil {
		h.fail(c, "admin/portfolio", err)
		return
	}
	c.HTML(http.StatusOK, "admin_portfolio.html", gin.H{"Items": items})
}

// GET /admin/shop
func (h *Handler) adminShop(c *gin.Context) {
	items, err := h.products.List(c.Request.Context())
	if err != nil {
		h.fail(c, "admin/shop", err)
		return
	}
	c.HTML(http.StatusOK, "admin_shop.html", gin.H{"Products": items})
}

// GET /admin/journal
func (h *Handler) adminJournal(c *gin.Context) {
	entries, err := h.journal.List(c.Request.Context())
	if err != nil {
		h.fail(c, "admin/journal", err)
		return
	}
	c.HTML(http.StatusOK, "admin_journal.html", gin.H{"Entries": entries})
}

// GET /admin/skills
func (h *Handler) adminSkills(c *gin.Context) {
	skills, err := h.skills.List(c.Request.Context())
	if err != nil {
		h.fail(c, "admin/skills", err)
		return
	}
	c.HTML(http.StatusOK, "admin_skills.html", gin.H{
		"Skills": skills,
		"Icons":  models.SkillIcons,
	})
}

// GET /admin/settings
func (h *Handler) adminSettings(c *gin.Context) {
	site, err := h.settings.Get(c.Request.Context())
	if err != nil {
		h.fail(c, "admin/settings", err)
		return
	}
	c.HTML(http.StatusOK, "admin_settings.html", gin.H{
		"Site":    site,
		"Socials": orderedSocials(site),
	})
}
