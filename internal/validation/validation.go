// Package validation содержит функции валидации входных данных.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/sulemanmukati/MongodbUserAuth/internal/model"
)

const (
	emailTag    = "email_address"
	passwordTag = "password_bytes"
	priceTag    = "price_range"
	maxTag      = "max"
)

// MaxPasswordBytes ограничение bcrypt на длину пароля в байтах.
const MaxPasswordBytes = 72

// Цена хранится в колонке NUMERIC(12,2): не более двух знаков после запятой
// и не более десяти знаков до неё.
const priceScale = 2

var priceLimit = decimal.New(1, 10)

var emailPattern = regexp.MustCompile(`^[\w-]+(\.[\w-]+)*@([\w-]+\.)+[a-zA-Z]{2,7}$`)

// Problem классифицирует результат проверки входной структуры.
type Problem int

const (
	// ProblemNone означает, что данные корректны.
	ProblemNone Problem = iota
	// ProblemMissing означает, что обязательное поле пустое или нулевое.
	ProblemMissing
	// ProblemMalformedEmail означает, что адрес почты не соответствует шаблону.
	ProblemMalformedEmail
	// ProblemPasswordTooLong означает, что пароль длиннее MaxPasswordBytes байт.
	ProblemPasswordTooLong
	// ProblemOutOfRange означает, что цена или количество не помещаются в хранилище.
	ProblemOutOfRange
)

var tagProblems = map[string]Problem{
	emailTag:    ProblemMalformedEmail,
	passwordTag: ProblemPasswordTooLong,
	priceTag:    ProblemOutOfRange,
	maxTag:      ProblemOutOfRange,
}

// IsValidEmail проверяет адрес электронной почты по упрощённому шаблону:
// локальная часть из букв, цифр, точек и дефисов, одна или несколько доменных
// меток и домен верхнего уровня из 2-7 латинских букв.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// IsStorablePrice сообщает, помещается ли цена в NUMERIC(12,2) без округления.
func IsStorablePrice(d decimal.Decimal) bool {
	return d.Equal(d.Round(priceScale)) && d.Abs().LessThan(priceLimit)
}

// Validator проверяет входные структуры по тегам validate.
type Validator struct {
	validate *validator.Validate
}

// New создаёт валидатор с зарегистрированными правилами сервиса.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})

	mustRegister(v, emailTag, func(fl validator.FieldLevel) bool {
		return IsValidEmail(fl.Field().String())
	})
	mustRegister(v, passwordTag, func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= MaxPasswordBytes
	})

	// Теги полей видят цену уже как float64, поэтому точность проверяется
	// на уровне структуры по исходному decimal.
	v.RegisterStructValidation(checkOrderPrice, model.PlaceOrderInput{})

	return &Validator{validate: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: register %q: %v", tag, err))
	}
}

func checkOrderPrice(sl validator.StructLevel) {
	in, ok := sl.Current().Interface().(model.PlaceOrderInput)
	if !ok {
		return
	}
	if !IsStorablePrice(in.Price) {
		sl.ReportError(in.Price, "Price", "price", priceTag, "")
	}
}

// Check проверяет структуру. Незаполненные поля имеют приоритет над прочими
// нарушениями; среди остальных возвращается первое.
func (v *Validator) Check(s any) (Problem, error) {
	err := v.validate.Struct(s)
	if err == nil {
		return ProblemNone, nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return ProblemNone, err
	}

	problem := ProblemNone
	for _, fe := range verrs {
		p, ok := tagProblems[fe.Tag()]
		if !ok {
			return ProblemMissing, nil
		}
		if problem == ProblemNone {
			problem = p
		}
	}

	return problem, nil
}
