package models_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/repuestoscl/catalog_backend/models"
	"github.com/repuestoscl/catalog_backend/utils"
)

var categoryColumns = []string{"id", "name", "description", "is_active", "created_at", "updated_at"}

func categoryRow(id int, name string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(categoryColumns).AddRow(id, name, "", true, now, now)
}

func TestCreateCategory(t *testing.T) {
	mock := newTestDB(t)
	ctx := context.Background()

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `categories` WHERE name = \\?").
		WillReturnRows(countRows(0))
	mock.ExpectExec("INSERT INTO `categories`").
		WillReturnResult(sqlmock.NewResult(1, 1))

	category, err := models.CreateCategory(ctx, &models.NewCategory{Name: "Aceite"})
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}
	if category.ID != 1 {
		t.Errorf("ID = %d, want 1", category.ID)
	}
	if category.IsActive == nil || !*category.IsActive {
		t.Error("new category should be active")
	}
}

func TestCreateCategory_DuplicateNameRejected(t *testing.T) {
	mock := newTestDB(t)
	ctx := context.Background()

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `categories` WHERE name = \\?").
		WillReturnRows(countRows(1))

	_, err := models.CreateCategory(ctx, &models.NewCategory{Name: "Aceite"})
	var dup *utils.DuplicateError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateError, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestDeleteCategory_RefusedWhileProductsRemain(t *testing.T) {
	mock := newTestDB(t)
	ctx := context.Background()

	mock.ExpectQuery("SELECT \\* FROM `categories` WHERE `categories`\\.`id` = \\?").
		WillReturnRows(categoryRow(1, "Aceite"))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `products` WHERE category_id = \\? AND is_active = \\?").
		WillReturnRows(countRows(3))

	_, err := models.DeleteCategory(ctx, 1)
	var verr *utils.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	// the category must not have been touched
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestDeleteCategory_SoftDeletes(t *testing.T) {
	mock := newTestDB(t)
	ctx := context.Background()

	mock.ExpectQuery("SELECT \\* FROM `categories` WHERE `categories`\\.`id` = \\?").
		WillReturnRows(categoryRow(1, "Aceite"))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `products` WHERE category_id = \\? AND is_active = \\?").
		WillReturnRows(countRows(0))
	mock.ExpectExec("UPDATE `categories` SET `is_active`=\\?,`updated_at`=\\? WHERE").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if _, err := models.DeleteCategory(ctx, 1); err != nil {
		t.Fatalf("DeleteCategory: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestUpdateCategory_NoFieldsIsNoOp(t *testing.T) {
	mock := newTestDB(t)
	ctx := context.Background()

	mock.ExpectQuery("SELECT \\* FROM `categories` WHERE `categories`\\.`id` = \\?").
		WillReturnRows(categoryRow(1, "Aceite"))

	category, err := models.UpdateCategory(ctx, 1, &models.UpdateCategoryInput{})
	if err != nil {
		t.Fatalf("UpdateCategory: %v", err)
	}
	if category.Name != "Aceite" {
		t.Errorf("Name = %s, want Aceite", category.Name)
	}
	// no UPDATE statement expected
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}
