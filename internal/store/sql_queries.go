package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-users-api/models"
)

const usersTable = "users"

var userColumns = []string{"id", "name", "email"}

// Question placeholders are what sqlite expects; squirrel's default.
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildListUsersQuery() (string, []any, error) {
	return builder.
		Select(userColumns...).
		From(usersTable).
		OrderBy("id ASC").
		ToSql()
}

func buildFindUserByIDQuery(id int64) (string, []any, error) {
	return builder.
		Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildInsertUserQuery(user models.User) (string, []any, error) {
	return builder.
		Insert(usersTable).
		Columns("name", "email").
		Values(user.Name, user.Email).
		ToSql()
}

// buildUpdateUserQuery sets only the supplied fields. It fails for an empty
// update because there is nothing to SET.
func buildUpdateUserQuery(id int64, update models.UserUpdate) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, fmt.Errorf("%w: no fields to update", ErrBuildingSQLQuery)
	}

	set := make(map[string]any, 2)
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Email != nil {
		set["email"] = *update.Email
	}

	return builder.
		Update(usersTable).
		SetMap(set).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildDeleteUserQuery(id int64) (string, []any, error) {
	return builder.
		Delete(usersTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}
