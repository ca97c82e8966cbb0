package academic

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
)

// StudentDashboard builds the dashboard of the first student user found in
// the document and caches it on the document itself.
func (svc *Service) StudentDashboard() (Dashboard, error) {
	doc := svc.store.Read()
	for _, usr := range doc.Users {
		if usr.IsStudent() {
			return svc.buildDashboard(doc, usr)
		}
	}
	return nil, errors.Wrap(ErrUserNotFound, "no student user")
}

// FacultyDashboard builds the dashboard of the given faculty member.
func (svc *Service) FacultyDashboard(facultyID string) (Dashboard, error) {
	return svc.roleDashboard(facultyID, RoleFaculty)
}

// ProctorDashboard builds the dashboard of the given proctor.
func (svc *Service) ProctorDashboard(proctorID string) (Dashboard, error) {
	return svc.roleDashboard(proctorID, RoleProctor)
}

// DashboardFor builds the dashboard of any user by id, without touching the
// cached copy.
func (svc *Service) DashboardFor(userID string) (Dashboard, error) {
	doc := svc.store.Read()
	usr, ok := doc.FindUser(userID)
	if !ok {
		return nil, errors.Wrapf(ErrUserNotFound, "user %s", userID)
	}
	return GenerateDashboard(&doc, usr)
}

func (svc *Service) roleDashboard(userID string, role Role) (Dashboard, error) {
	doc := svc.store.Read()
	usr, ok := doc.FindUser(userID)
	if !ok || usr.Role != role {
		return nil, errors.Wrapf(ErrUserNotFound, "%s %s", role, userID)
	}
	return svc.buildDashboard(doc, usr)
}

// buildDashboard generates the view and best-effort caches it on the
// document. A failed cache write never fails the request.
func (svc *Service) buildDashboard(doc Document, usr User) (Dashboard, error) {
	dash, err := GenerateDashboard(&doc, usr)
	if err != nil {
		return nil, err
	}
	if raw, err := json.Marshal(dash); err == nil {
		doc.Dashboard = raw
		if !svc.store.Write(doc) {
			svc.log.Warn(fmt.Sprintf("dashboard cache write failed for %s", usr.ID))
		}
	}
	return dash, nil
}
