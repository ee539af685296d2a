package cli

import (
	"context"
	"os"
	"strconv"

	"github.com/facturadash/facturadash/internal/client/models"
	"github.com/facturadash/facturadash/internal/client/validation"
)

func isRUC(s string) bool {
	if len(s) != 11 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Companies lists registered companies and the active-company count.
func (a *App) Companies(ctx context.Context) error {
	page, err := a.api.Companies(ctx, models.CompanyFilter{})
	if err != nil {
		a.reportError(ctx, err)
		return err
	}

	printfFn("%-5s %-30s %-12s %-8s %s\n", "ID", "NAME", "RUC", "PLAN", "ACTIVE")
	for _, c := range page.Items {
		printfFn("%-5d %-30s %-12s %-8s %v\n", c.ID, truncate(c.Name, 30), c.RUC, c.Plan, c.Active)
	}
	printPageFooter(page.Pagination)

	active := true
	if total, err := a.api.CompanyCount(ctx, &active); err == nil {
		printfFn("Active companies: %d\n", total)
	}
	return nil
}

// Company shows one company, looked up by numeric id or by an 11-digit RUC,
// together with its users.
func (a *App) Company(ctx context.Context, key string) error {
	var (
		company *models.Company
		err     error
	)

	if isRUC(key) {
		company, err = a.api.CompanyByRUC(ctx, key)
	} else {
		var id int64
		id, err = strconv.ParseInt(key, 10, 64)
		if err != nil {
			printlnFn("Invalid company id or RUC:", key)
			return nil
		}
		company, err = a.api.Company(ctx, id)
	}
	if err != nil {
		a.reportError(ctx, err)
		return err
	}

	printfFn("%s (id %d)\n", company.Name, company.ID)
	printfFn("  RUC:    %s\n", company.RUC)
	printfFn("  Email:  %s\n", company.ProcessingEmail)
	printfFn("  Plan:   %s\n", company.Plan)
	printfFn("  Active: %v\n", company.Active)

	users, err := a.api.CompanyUsers(ctx, company.ID, models.ListQuery{})
	if err != nil {
		a.reportError(ctx, err)
		return err
	}
	if len(users.Items) > 0 {
		printlnFn("Users:")
		for _, u := range users.Items {
			printfFn("  %-30s %-30s %s\n", u.FullName(), u.Email, u.Role)
		}
	}
	return nil
}

// AddCompany prompts for company details, validates them locally, and
// registers the company.
func (a *App) AddCompany(ctx context.Context) error {
	payload := models.CompanyCreate{}

	prompts := []struct {
		label string
		dst   *string
	}{
		{"Enter company name", &payload.Name},
		{"Enter RUC (11 digits)", &payload.RUC},
		{"Enter processing email", &payload.ProcessingEmail},
		{"Enter address (optional)", &payload.Address},
		{"Enter phone (optional)", &payload.Phone},
	}
	for _, p := range prompts {
		v, err := getSimpleText(a.reader, p.label, os.Stdout)
		if err != nil {
			return err
		}
		*p.dst = v
	}

	form := validation.CompanyForm{
		Name:  payload.Name,
		RUC:   payload.RUC,
		Email: payload.ProcessingEmail,
		Phone: payload.Phone,
	}
	if err := validation.Check(form); err != nil {
		printlnFn("Invalid input:", err.Error())
		return nil
	}

	company, err := a.api.CreateCompany(ctx, payload)
	if err != nil {
		a.reportError(ctx, err)
		return err
	}

	printfFn("Created company %s (id %d)\n", company.Name, company.ID)
	return nil
}

// EditCompany updates selected fields of a company. Prompts left blank keep
// the current value.
func (a *App) EditCompany(ctx context.Context, id string) error {
	companyID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		printlnFn("Invalid company id:", id)
		return nil
	}

	update := models.CompanyUpdate{}

	prompts := []struct {
		label string
		dst   **string
	}{
		{"New name (blank to keep)", &update.Name},
		{"New processing email (blank to keep)", &update.ProcessingEmail},
		{"New phone (blank to keep)", &update.Phone},
		{"New plan (blank to keep)", &update.Plan},
	}
	for _, p := range prompts {
		v, err := getSimpleText(a.reader, p.label, os.Stdout)
		if err != nil {
			return err
		}
		if v != "" {
			value := v
			*p.dst = &value
		}
	}

	company, err := a.api.UpdateCompany(ctx, companyID, update)
	if err != nil {
		a.reportError(ctx, err)
		return err
	}

	printfFn("Updated company %s (id %d)\n", company.Name, company.ID)
	return nil
}
