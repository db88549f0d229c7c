/*
Package tasksdk provides a client SDK for the taskboard service.

# Client vs Session

  - Client: public endpoints (health, bootstrap, signup, login)
  - Session: operations that need a bearer token

	client := tasksdk.NewClient("http://localhost:8080")

	session, err := client.Login(ctx, "alice@example.com", "password123")
	if err != nil {
		return err
	}

	task, err := session.CreateMyTask(ctx, tasksdk.CreateTaskRequest{
		Title:   "Write report",
		EndTime: &due,
	})

	dash, err := session.Dashboard(ctx)

Admin operations (ListUsers, CreateAdmin, ListTasks and friends) live on the
same Session and fail with a 403 APIError for non-admins.

# Errors

Every non-2xx answer is returned as *APIError carrying the status code and the
server's message:

	if tasksdk.IsStatus(err, http.StatusNotFound) {
		// ...
	}

# Thread Safety

Sessions are safe for concurrent use. UpdatePassword swaps the session's token
for the reissued one under a lock.
*/
package tasksdk
