package fields

import (
	"github.com/dmitrymomot/inputmask/pkg/sanitizer"
	"github.com/dmitrymomot/inputmask/pkg/validator"
)

const (
	cepPattern        = "00000-000"
	cpfPattern        = "000.000.000-00"
	cnpjPattern       = "00.000.000/0000-00"
	boletoPattern     = "00000.00000 00000.000000 00000.000000 0 00000000000000"
	nfePattern        = "0000 0000 0000 0000 0000 0000 0000 0000 0000 0000 0000"
	carPlatePattern   = "UUU-0000"
	creditCardPattern = "0000 0000 0000 0000"
	timePattern       = "00:00:00"
	shortTimePattern  = "00:00"
)

// CEP is the Brazilian postal code.
func CEP() *Fixed {
	return mustFixed("cep", cepPattern, sanitizer.Digits, Length(8))
}

// CPF is the individual taxpayer number, validated by its check digits.
func CPF() *Fixed {
	return mustFixed("cpf", cpfPattern, sanitizer.Digits, validator.ValidCPF)
}

// CNPJ is the company taxpayer number, validated by its check digits.
func CNPJ() *Fixed {
	return mustFixed("cnpj", cnpjPattern, sanitizer.Digits, validator.ValidCNPJ)
}

// Boleto is the typeable line of a bank slip.
func Boleto() *Fixed {
	return mustFixed("boleto", boletoPattern, sanitizer.Digits, Length(47))
}

// NFe is the 44-digit access key of an electronic invoice.
func NFe() *Fixed {
	return mustFixed("nfe", nfePattern, sanitizer.Digits, Length(44))
}

// CarPlate is the legacy three letters, four digits vehicle plate.
func CarPlate() *Fixed {
	return mustFixed("car-plate", carPlatePattern, sanitizer.Alphanumeric, Length(7))
}

func CreditCard() *Fixed {
	return mustFixed("credit-card", creditCardPattern, sanitizer.Digits, Length(16))
}

// Time is HH:MM:SS, or HH:MM when short is set.
func Time(short bool) *Fixed {
	if short {
		return mustFixed("time-short", shortTimePattern, sanitizer.Digits, timeRule(false))
	}
	return mustFixed("time", timePattern, sanitizer.Digits, timeRule(true))
}

func timeRule(withSeconds bool) RuleFunc {
	return func(field, clean string) validator.Rule {
		return validator.ValidTime(field, clean, withSeconds)
	}
}
