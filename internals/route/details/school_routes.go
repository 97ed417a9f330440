// file: internals/route/details/school_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceController "absensiku_backend/internals/features/school/attendance/controller"
	leaveController "absensiku_backend/internals/features/school/leave_requests/controller"
	reportController "absensiku_backend/internals/features/school/reports/controller"
	scheduleController "absensiku_backend/internals/features/school/schedules/controller"
	siswaController "absensiku_backend/internals/features/school/students/controller"
	authMiddleware "absensiku_backend/internals/middlewares/auth"
)

// SchoolUserRoutes: endpoint /api/u/* untuk siswa (dan admin) yang login.
func SchoolUserRoutes(user fiber.Router, db *gorm.DB) {
	jadwalCtl := scheduleController.NewJadwalController(db)
	user.Get("/schedules", jadwalCtl.GetSchedules)
	user.Get("/schedules/realtime", jadwalCtl.GetRealtime)
	user.Get("/schedules/week", jadwalCtl.GetWeek)
	user.Get("/schedules/slots", jadwalCtl.GetSlots)

	kehadiranCtl := attendanceController.NewKehadiranController(db)
	user.Post("/attendance", authMiddleware.RequireStudent("absensi"), kehadiranCtl.CheckIn)

	pengajuanCtl := leaveController.NewPengajuanController(db)
	user.Post("/leave-requests", authMiddleware.RequireStudent("pengajuan izin"), pengajuanCtl.Submit)
	user.Get("/leave-requests", pengajuanCtl.MyHistory)
}

// SchoolAdminRoutes: endpoint /api/a/* khusus admin.
func SchoolAdminRoutes(admin fiber.Router, db *gorm.DB) {
	kehadiranCtl := attendanceController.NewKehadiranController(db)
	admin.Get("/attendance", kehadiranCtl.List)

	siswaCtl := siswaController.NewSiswaController(db)
	admin.Get("/students", siswaCtl.List)

	approvalCtl := leaveController.NewApprovalController(db)
	admin.Get("/approvals", approvalCtl.ListPending)
	admin.Post("/approvals/:id/approve", approvalCtl.Approve)
	admin.Post("/approvals/:id/reject", approvalCtl.Reject)
	admin.Post("/approvals/:id/reset", approvalCtl.Reset)

	reportCtl := reportController.NewReportController(db)
	admin.Get("/reports/summary", reportCtl.GetSummary)
	admin.Get("/reports/cards", reportCtl.GetCards)
	admin.Get("/reports/leaves", reportCtl.GetLeaves)
	admin.Get("/reports/classes", reportCtl.GetClasses)
}
