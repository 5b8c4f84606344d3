package domain

import "errors"

var ErrAccountNotFound = errors.New("Account not found")
var ErrDuplicateAccount = errors.New("Account already exists")
var ErrInsufficientBalance = errors.New("Insufficient balance")
var ErrSameAccountTransfer = errors.New("Same account transfer not supported")
var ErrInvalidAmount = errors.New("Invalid amount")
var ErrRecordNotFound = errors.New("Record not found")
