package repository

import (
	jsoniter "github.com/json-iterator/go"
)

// Colunas JSONB passam pelo mesmo codec em todos os repositórios
var json = jsoniter.ConfigCompatibleWithStandardLibrary
