// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

//go:build !debug

package robdd

const _DEBUG bool = false
const _LOGLEVEL int = 0

func (m *Manager) logTable() {}

func (m *Manager) checkTable() error { return nil }
