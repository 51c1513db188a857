package web

import "github.com/mrigtrishna/core/internal/models"

func firstN[T any](items []T, n int) []T {
	if len(items) <= n {
		return items
	}
	return items[:n]
}

func pageNumbers(totalPage int) []int {
	pages := make([]int, 0, totalPage)
	for i := 1; i <= totalPage; i++ {
		pages = append(pages, i)
	}
	return pages
}

func portfolioCategories(items []models.PortfolioModel) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, item := range items {
		if item.Category != "" && !seen[item.Category] {
			seen[item.Category] = true
			out = append(out, item.Category)
		}
	}
	return out
}

func productCategories(items []models.ProductModel) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, item := range items {
		if item.Category != "" && !seen[item.Category] {
			seen[item.Category] = true
			out = append(out, item.Category)
		}
	}
	return out
}
