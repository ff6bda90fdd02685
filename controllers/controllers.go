package controllers

import (
	"github.com/xmwu0124/predocker/config"
	"github.com/xmwu0124/predocker/services"
	"github.com/xmwu0124/predocker/storage"
)

// Package-level dependencies, wired once at startup via Init. Tests swap
// these directly (sendMailFunc in particular).
var (
	store              storage.Store
	applicationService *services.ApplicationService
	refereeService     *services.RefereeService
	cvAnalyzer         services.Analyzer

	sendMailFunc = config.SendMail
)

// Init wires the controllers to their storage and the CV analyzer.
func Init(s storage.Store, analyzer services.Analyzer) {
	store = s
	applicationService = services.NewApplicationService(s)
	refereeService = services.NewRefereeService(s)
	cvAnalyzer = analyzer
}
