package store

const (
	createUser = `INSERT INTO users (email, password_hash, full_name)
    VALUES ($1, $2, $3)
    RETURNING user_id, email, password_hash, full_name, status, created_at;`

	findUserByEmail = `SELECT user_id, email, password_hash, full_name, status, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, email, password_hash, full_name, status, created_at
    FROM users
    WHERE user_id = $1;`

	createTrip = `INSERT INTO trips (owner_id, name, flight_booking_ids, hotel_booking_ids)
    VALUES ($1, $2, $3, $4)
    RETURNING trip_id, owner_id, name, flight_booking_ids, hotel_booking_ids, status, created_at, updated_at;`

	getTrip = `SELECT trip_id, owner_id, name, flight_booking_ids, hotel_booking_ids, status, created_at, updated_at
    FROM trips
    WHERE trip_id = $1 AND owner_id = $2 AND status = 'active';`

	deleteTrip = `UPDATE trips
    SET status = 'deleted', updated_at = NOW()
    WHERE trip_id = $1 AND owner_id = $2 AND status = 'active';`
)
