package validated_test

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	goerrors "github.com/goliatone/go-errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validated"
)

// profile is a three-field record assembled from independently validated
// parts. The tests below drive the full pipeline: primitive constructors,
// chained continuation, and extraction.
type profile struct {
	Username string
	Age      int
	Score    int
}

func checkUsername(raw string) validated.Validated[string, string] {
	if strings.ContainsAny(raw, " \t") {
		return validated.Invalid("", "bad format")
	}
	return validated.Valid[string, string](raw)
}

func checkAge(raw string) validated.Validated[int, string] {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return validated.Invalid(0, "not a number")
	}
	return validated.Valid[int, string](n)
}

func checkScore(raw string) validated.Validated[int, string] {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return validated.Invalid(0, "not a number")
	}
	if n < 0 || n > 100 {
		return validated.Invalid(0, "out of range")
	}
	return validated.Valid[int, string](n)
}

func buildProfile(username, age, score string) validated.Validated[profile, string] {
	return validated.Then(checkUsername(username), func(name string) validated.Validated[profile, string] {
		return validated.Then(checkAge(age), func(years int) validated.Validated[profile, string] {
			return validated.Then(checkScore(score), func(points int) validated.Validated[profile, string] {
				return validated.Valid[profile, string](profile{Username: name, Age: years, Score: points})
			})
		})
	})
}

func TestProfileValidation(t *testing.T) {
	t.Parallel()

	t.Run("all fields valid", func(t *testing.T) {
		t.Parallel()

		got := buildProfile("alice", "30", "85")

		require.True(t, got.IsValid())
		value, errs := got.Result()
		assert.Nil(t, errs)
		assert.Equal(t, profile{Username: "alice", Age: 30, Score: 85}, value)
	})

	t.Run("failures accumulate across fields in order", func(t *testing.T) {
		t.Parallel()

		// Field 1 fails format, field 2 passes, field 3 fails range. The
		// chain must report both failures, and field 2's real value must
		// appear inside the carried placeholder record.
		got := buildProfile("al ice", "30", "9000")

		require.True(t, got.IsInvalid())
		assert.Equal(t, []string{"bad format", "out of range"}, got.Errors())
		assert.Equal(t, profile{Username: "", Age: 30, Score: 0}, got.Unwrap())

		value, errs := got.Result()
		assert.Equal(t, profile{}, value)
		assert.Equal(t, []string{"bad format", "out of range"}, errs)
	})

	t.Run("every field failing reports every error", func(t *testing.T) {
		t.Parallel()

		got := buildProfile("al ice", "thirty", "many")

		require.True(t, got.IsInvalid())
		assert.Equal(t, []string{"bad format", "not a number", "not a number"}, got.Errors())
	})
}

func TestSignupFormValidation(t *testing.T) {
	t.Parallel()

	type signup struct {
		AccountID uuid.UUID
		Email     string
		Age       int
		Marketing bool
	}

	checkEmail := func(raw string) (string, error) {
		if !strings.Contains(raw, "@") {
			return "", errors.New("email is malformed")
		}
		return strings.ToLower(raw), nil
	}

	parse := func(id, email, age, marketing string) validated.Validated[signup, error] {
		parsedID, err := uuid.Parse(id)
		vID := validated.Try(uuid.Nil, parsedID, err)
		vEmail := validated.String(checkEmail(email))
		vAge := validated.Number(strconv.Atoi(age))
		vMarketing := validated.Bool(strconv.ParseBool(marketing))

		return validated.Then(vID, func(accountID uuid.UUID) validated.Validated[signup, error] {
			return validated.Then(vEmail, func(addr string) validated.Validated[signup, error] {
				return validated.Then(vAge, func(years int) validated.Validated[signup, error] {
					return validated.Then(vMarketing, func(optIn bool) validated.Validated[signup, error] {
						return validated.Valid[signup, error](signup{
							AccountID: accountID,
							Email:     addr,
							Age:       years,
							Marketing: optIn,
						})
					})
				})
			})
		})
	}

	t.Run("well-formed input", func(t *testing.T) {
		t.Parallel()

		id := uuid.New()
		got := parse(id.String(), "Alice@Example.COM", "30", "true")

		require.True(t, got.IsValid())
		form := got.Unwrap()
		assert.Equal(t, id, form.AccountID)
		assert.Equal(t, "alice@example.com", form.Email)
		assert.Equal(t, 30, form.Age)
		assert.True(t, form.Marketing)
	})

	t.Run("every broken field contributes an error", func(t *testing.T) {
		t.Parallel()

		got := parse("not-a-uuid", "nobody", "thirty", "maybe")

		require.True(t, got.IsInvalid())
		assert.Len(t, got.Errors(), 4)

		err := validated.Err(got)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "email is malformed")
	})

	t.Run("partial failure keeps the valid fields flowing", func(t *testing.T) {
		t.Parallel()

		got := parse("not-a-uuid", "alice@example.com", "30", "true")

		require.True(t, got.IsInvalid())
		assert.Len(t, got.Errors(), 1)

		// The placeholder record carries the fields that did validate.
		form := got.Unwrap()
		assert.Equal(t, uuid.Nil, form.AccountID)
		assert.Equal(t, "alice@example.com", form.Email)
		assert.Equal(t, 30, form.Age)
		assert.True(t, form.Marketing)
	})
}

func TestStructuredErrorAccumulation(t *testing.T) {
	t.Parallel()

	t.Run("caller-defined error values pass through untouched", func(t *testing.T) {
		t.Parallel()

		emailErr := goerrors.New("email address is malformed", goerrors.CategoryValidation).
			WithTextCode("INVALID_EMAIL")
		ageErr := goerrors.New("age must be a positive number", goerrors.CategoryValidation).
			WithTextCode("INVALID_AGE")

		got := validated.Combine(
			validated.Invalid("", emailErr),
			validated.Invalid(0, ageErr),
		)

		errs := got.Errors()
		require.Len(t, errs, 2)
		assert.Same(t, emailErr, errs[0])
		assert.Same(t, ageErr, errs[1])
		assert.Equal(t, "INVALID_EMAIL", errs[0].TextCode)
		assert.Equal(t, "INVALID_AGE", errs[1].TextCode)
	})

	t.Run("structured errors recast to text codes at the boundary", func(t *testing.T) {
		t.Parallel()

		v := validated.Invalid(0,
			goerrors.New("email address is malformed", goerrors.CategoryValidation).WithTextCode("INVALID_EMAIL"),
			goerrors.New("age must be a positive number", goerrors.CategoryValidation).WithTextCode("INVALID_AGE"),
		)

		codes := validated.MapErrors(v, func(err *goerrors.Error) string {
			return err.TextCode
		})

		assert.Equal(t, []string{"INVALID_EMAIL", "INVALID_AGE"}, codes.Errors())
	})
}
