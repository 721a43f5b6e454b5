package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/IShachouI/Claremont-Student-Nutrition-Tracker/internal/catalog"
	"github.com/IShachouI/Claremont-Student-Nutrition-Tracker/internal/domain"
	"github.com/IShachouI/Claremont-Student-Nutrition-Tracker/internal/service"
	"github.com/IShachouI/Claremont-Student-Nutrition-Tracker/internal/store/memory"
)

const optionsText = `
Options:
1. Log a meal
2. View today's nutrition
3. Get meal recommendation
4. Share nutrition with friends
5. Exit
`

type console struct {
	in          *bufio.Scanner
	out         io.Writer
	catalog     *catalog.Catalog
	registry    *memory.UserRegistry
	mealLog     *service.MealLogService
	recommender *service.RecommendationService
	sharing     *service.SharingService
	now         func() time.Time
}

func (c *console) run(ctx context.Context) {
	fmt.Fprintln(c.out, "Welcome to the Student Nutrition Tracker!")

	id, ok := c.prompt("Enter your student ID: ")
	if !ok {
		return
	}
	user, found := c.registry.GetByID(id)
	if !found {
		fmt.Fprintln(c.out, "User not found. Exiting.")
		return
	}

	for {
		fmt.Fprint(c.out, optionsText)
		choice, ok := c.prompt("Select an option: ")
		if !ok {
			return
		}

		date := domain.DateKey(c.now())

		switch choice {
		case "1":
			c.logMeal(user, date)
		case "2":
			c.viewNutrition(user, date)
		case "3":
			c.recommend(user, date)
		case "4":
			c.share(ctx, user, date)
		case "5":
			fmt.Fprintln(c.out, "Goodbye!")
			return
		default:
			fmt.Fprintln(c.out, "Invalid option.")
		}
	}
}

func (c *console) logMeal(user *domain.UserProfile, date string) {
	halls := c.catalog.DiningHalls()
	sort.Strings(halls)
	hall, ok := c.choose(halls, "Choose dining hall number: ")
	if !ok {
		return
	}

	meals := c.catalog.Meals(hall)
	sort.Strings(meals)
	meal, ok := c.choose(meals, "Choose meal period number: ")
	if !ok {
		return
	}

	items := c.catalog.Items(hall, meal)
	for i, item := range items {
		fmt.Fprintf(c.out, "%d. %s\n", i+1, item)
	}
	idx, ok := c.selectIndex(len(items), "Choose dish number: ")
	if !ok {
		return
	}

	item, err := c.mealLog.LogItem(user, date, hall, meal, idx)
	if err != nil {
		fmt.Fprintln(c.out, "Invalid selection.")
		return
	}
	fmt.Fprintf(c.out, "Logged: %s for %s\n", item.Dish, date)
}

func (c *console) viewNutrition(user *domain.UserProfile, date string) {
	fmt.Fprintf(c.out, "Nutrition for %s: %s\n", date, user.DailyTotal(date))
	fmt.Fprintf(c.out, "Your calorie goal: %.1f\n", user.Goals.Calories)
}

func (c *console) recommend(user *domain.UserProfile, date string) {
	rec, ok := c.recommender.RecommendFor(user, date)
	if !ok {
		fmt.Fprintln(c.out, "No recommendation available.")
		return
	}
	e := rec.Entry
	fmt.Fprintf(c.out, "Recommended: %s at %s (%s) - %.1f kcal\n", e.Item.Dish, e.Hall, e.Meal, e.Item.Facts.Calories)
}

func (c *console) share(ctx context.Context, user *domain.UserProfile, date string) {
	shared, err := c.sharing.ShareDaily(ctx, user, date)
	if err != nil {
		fmt.Fprintf(c.out, "Sharing failed: %v\n", err)
		return
	}
	if len(shared) == 0 {
		fmt.Fprintln(c.out, "No friends to share with.")
	}
}

// choose lists options numbered from 1 and returns the picked one.
func (c *console) choose(options []string, label string) (string, bool) {
	for i, o := range options {
		fmt.Fprintf(c.out, "%d. %s\n", i+1, o)
	}
	idx, ok := c.selectIndex(len(options), label)
	if !ok {
		return "", false
	}
	return options[idx], true
}

// selectIndex reads a 1-based number and returns it zero based.
func (c *console) selectIndex(n int, label string) (int, bool) {
	text, ok := c.prompt(label)
	if !ok {
		return 0, false
	}
	num, err := strconv.Atoi(text)
	if err != nil || num < 1 || num > n {
		fmt.Fprintln(c.out, "Invalid selection.")
		return 0, false
	}
	return num - 1, true
}

func (c *console) prompt(label string) (string, bool) {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}
