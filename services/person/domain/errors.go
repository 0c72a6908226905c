// Package domain holds the error taxonomy for the person bounded context.
// Handlers never build error payloads themselves; they surface these types
// and pkg/errhttp maps them to the wire envelope.
package domain

import (
	"errors"
	"fmt"
)

// Machine codes carried in the error envelope's "error" field.
const (
	CodeInvalidInput = "entrada_invalida"
	CodeConflict     = "recurso_existente"
	CodeNotFound     = "recurso_nao_encontrado"
	CodeInternal     = "erro_interno"
)

// Client-facing messages are part of the public API contract and stay in
// pt-BR, typos included.
const (
	MsgNameBlank       = "O campo nome não pode ser vázio."
	MsgLastNameBlank   = "O campo sobrenome não pode ser vázio."
	MsgDocumentNull    = "O campo CPF não pode ser nulo."
	MsgDocumentInvalid = "O CPF %s informado é inválido."
	MsgBirthDateNull   = "O campo Data de nascimento não pode ser nulo."
	MsgBirthDateFuture = "O campo data de nascimento não pode ser maior que a data de hoje."
	MsgAddressBlank    = "O campo endereço não pode ser vázio."
	MsgPhonesEmpty     = "Os telefones não podem ser nulo."
	MsgPhoneInvalid    = "O telefone/celular %s informado é inválido."
	MsgEmailsEmpty     = "Os e-mails não podem ser nulo."
	MsgEmailInvalid    = "O e-mail %s informado é inválido."
	MsgIDBlank         = "O campo id não pode ser vázio."

	MsgDocumentTaken  = "CPF %s já cadastrado."
	MsgEmailTaken     = "E-mail %s já cadastrado."
	MsgPersonNotFound = "Pessoa com o identificador %s não econtrada."
	MsgInternalError  = "Ops... Ocorreu um erro interno."
)

// ErrRecordNotFound is the repository-level sentinel for an absent record.
// Stores return it from single-record lookups; services decide whether the
// absence is an error (update) or the happy path (uniqueness checks,
// inactivation no-op).
var ErrRecordNotFound = errors.New("person record not found")

// ValidationError reports the first field rule violated while building a
// Person. Maps to 400 / entrada_invalida.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Invalidf builds a ValidationError from a message template and the
// offending value.
func Invalidf(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ConflictError reports a uniqueness violation, naming the duplicated
// document or email. Maps to 409 / recurso_existente.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// Conflictf builds a ConflictError naming the duplicated value.
func Conflictf(format string, args ...any) *ConflictError {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError reports that the id targeted by an update does not exist.
// Maps to 404 / recurso_nao_encontrado.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// NotFoundf builds a NotFoundError naming the requested id.
func NotFoundf(format string, args ...any) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}
