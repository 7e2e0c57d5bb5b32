package services

// Services defined in this package:
// - UserService: user CRUD and cascade-aware deletion
// - CourseService: course creation and paginated listing
// - ProjectService: project CRUD including the user-nested routes
