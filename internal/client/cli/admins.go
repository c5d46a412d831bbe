package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/denidash/internal/client/apperr"
	"github.com/dmitrijs2005/denidash/internal/client/models"
	"github.com/dmitrijs2005/denidash/internal/client/validate"
	"github.com/dmitrijs2005/denidash/internal/common"
)

func (a *App) Admins(ctx context.Context, _ []string) error {
	if err := a.guard.Load(ctx, a.admins.Fetch); err != nil {
		return err
	}
	renderAdmins(a.out, a.admins.State().Data)
	return nil
}

// AddAdmin prompts for the new administrator's details and creates it.
func (a *App) AddAdmin(ctx context.Context, _ []string) error {
	if !a.guard.Require(ctx) {
		return nil
	}

	name, err := GetSimpleText(a.reader, "Name", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out, "Password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	role, err := GetTextWithDefault(a.reader, "Role (admin, super_admin, moderator)", string(models.RoleAdmin), a.out)
	if err != nil {
		return err
	}

	created, err := a.admins.Create(ctx, models.CreateAdminRequest{
		Name:     name,
		Email:    email,
		Password: string(password),
		Role:     models.Role(role),
	})
	if err != nil {
		a.guard.Check(ctx, err)
		return err
	}
	renderAdmin(a.out, created)
	return nil
}

// EditAdmin changes name, role or active flag of the admin with the given
// id. Empty answers leave a field unchanged.
func (a *App) EditAdmin(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: editadmin <id>")
		return nil
	}
	if !a.guard.Require(ctx) {
		return nil
	}

	var req models.UpdateAdminRequest

	name, err := GetSimpleText(a.reader, "New name (empty to keep)", a.out)
	if err != nil {
		return err
	}
	if name != "" {
		req.Name = &name
	}

	role, err := GetSimpleText(a.reader, "New role (empty to keep)", a.out)
	if err != nil {
		return err
	}
	if role != "" {
		r := models.Role(role)
		if !r.Valid() {
			fmt.Fprintln(a.out, "Invalid role")
			return apperr.New(apperr.CodeValidation, "Invalid role")
		}
		req.Role = &r
	}

	active, err := GetSimpleText(a.reader, "Active? y/n (empty to keep)", a.out)
	if err != nil {
		return err
	}
	switch strings.ToLower(active) {
	case "y", "yes":
		v := true
		req.IsActive = &v
	case "n", "no":
		v := false
		req.IsActive = &v
	}

	updated, err := a.admins.Update(ctx, args[0], req)
	if err != nil {
		a.guard.Check(ctx, err)
		return err
	}
	renderAdmin(a.out, updated)
	return nil
}

func (a *App) DeleteAdmin(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: deladmin <id>")
		return nil
	}
	if !a.guard.Require(ctx) {
		return nil
	}

	ok, err := GetConfirmation(a.reader, fmt.Sprintf("Delete admin %s?", args[0]), false, a.out)
	if err != nil || !ok {
		return err
	}

	if err := a.admins.Delete(ctx, args[0]); err != nil {
		a.guard.Check(ctx, err)
		return err
	}
	return nil
}

func (a *App) Profile(ctx context.Context, _ []string) error {
	if err := a.guard.Load(ctx, a.profile.Fetch); err != nil {
		return err
	}
	if p := a.profile.State().Data; p != nil {
		renderAdmin(a.out, *p)
	}
	return nil
}

// EditProfile changes the signed-in admin's name and, optionally, password.
// A new password must be typed twice.
func (a *App) EditProfile(ctx context.Context, _ []string) error {
	if !a.guard.Require(ctx) {
		return nil
	}

	var req models.UpdateProfileRequest

	name, err := GetSimpleText(a.reader, "New name (empty to keep)", a.out)
	if err != nil {
		return err
	}
	if name != "" {
		req.Name = &name
	}

	password, err := GetPassword(a.out, "New password (empty to keep)")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if len(password) > 0 {
		confirm, err := GetPassword(a.out, "Repeat new password")
		if err != nil {
			return err
		}
		defer common.WipeByteArray(confirm)

		if err := checkNewPassword(string(password), string(confirm)); err != nil {
			fmt.Fprintln(a.out, err.Error())
			return err
		}
		pw := string(password)
		req.Password = &pw
	}

	if req.Name == nil && req.Password == nil {
		fmt.Fprintln(a.out, "Nothing to change")
		return nil
	}

	updated, err := a.profile.Update(ctx, req)
	if err != nil {
		a.guard.Check(ctx, err)
		return err
	}
	renderAdmin(a.out, updated)
	return nil
}

func checkNewPassword(password, confirm string) error {
	if err := validate.Password(password); err != nil {
		return err
	}
	return validate.PasswordConfirmation(password, confirm)
}
