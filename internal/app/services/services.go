package services

// Services defined in this package:
// - ScheduleService: validates course records, builds the weekly schedule,
//   and persists the user's document
// - TravelService: computes leave-by plans and schedules reminders
// - GeocodeService: address autocomplete and place-to-coordinate resolution
// - ExportService: renders the generated week as .ics or .xlsx downloads
