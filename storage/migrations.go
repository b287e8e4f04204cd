package storage

var pgMigration = []string{
	`CREATE TABLE playlist (
id uuid PRIMARY KEY,
user_id VARCHAR(255) NOT NULL DEFAULT '',
title VARCHAR(255) NOT NULL,
description TEXT NOT NULL DEFAULT '',
query VARCHAR(255) NOT NULL,
language VARCHAR(16) NOT NULL DEFAULT 'en',
difficulty VARCHAR(32) NOT NULL DEFAULT '',
total_videos INTEGER NOT NULL DEFAULT 0,
completed_videos INTEGER NOT NULL DEFAULT 0,
created_at TIMESTAMPTZ NOT NULL
)`,
	`CREATE TABLE playlist_video (
id SERIAL PRIMARY KEY,
playlist_id uuid NOT NULL REFERENCES playlist(id) ON DELETE CASCADE,
youtube_id VARCHAR(255) NOT NULL,
title VARCHAR(255) NOT NULL,
description TEXT NOT NULL DEFAULT '',
channel_title VARCHAR(255) NOT NULL DEFAULT '',
thumbnail_url VARCHAR(255) NOT NULL DEFAULT '',
published_at VARCHAR(255) NOT NULL DEFAULT '',
duration VARCHAR(32) NOT NULL DEFAULT '',
difficulty VARCHAR(32) NOT NULL DEFAULT 'beginner',
position INTEGER NOT NULL
)`,
	`CREATE TABLE history (
id uuid PRIMARY KEY,
user_id VARCHAR(255) NOT NULL,
youtube_id VARCHAR(255) NOT NULL,
title VARCHAR(255) NOT NULL DEFAULT '',
thumbnail_url VARCHAR(255) NOT NULL DEFAULT '',
duration VARCHAR(32) NOT NULL DEFAULT '',
watch_time INTEGER NOT NULL DEFAULT 0,
completed BOOLEAN NOT NULL DEFAULT FALSE,
viewed_at TIMESTAMPTZ NOT NULL,
UNIQUE (user_id, youtube_id)
)`,
	`CREATE TABLE search_history (
id uuid PRIMARY KEY,
user_id VARCHAR(255) NOT NULL DEFAULT '',
query VARCHAR(255) NOT NULL,
language VARCHAR(16) NOT NULL DEFAULT 'en',
difficulty VARCHAR(32) NOT NULL DEFAULT '',
results_count INTEGER NOT NULL DEFAULT 0,
created_at TIMESTAMPTZ NOT NULL
)`,
	`CREATE TABLE interview (
id uuid PRIMARY KEY,
user_id VARCHAR(255) NOT NULL DEFAULT '',
job_position VARCHAR(255) NOT NULL,
job_description TEXT NOT NULL DEFAULT '',
job_experience VARCHAR(255) NOT NULL DEFAULT '',
questions TEXT NOT NULL DEFAULT '[]',
created_at TIMESTAMPTZ NOT NULL
)`,
	`CREATE TABLE interview_answer (
id uuid PRIMARY KEY,
interview_id uuid NOT NULL REFERENCES interview(id) ON DELETE CASCADE,
question TEXT NOT NULL,
correct_answer TEXT NOT NULL DEFAULT '',
user_answer TEXT NOT NULL DEFAULT '',
feedback TEXT NOT NULL DEFAULT '',
rating VARCHAR(32) NOT NULL DEFAULT '',
created_at TIMESTAMPTZ NOT NULL
)`,
}
